package guide

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/catalog"
	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/goals"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/summary"
)

const personaPrompt = `You are a warm, non-judgmental journaling assistant that helps build emotional resilience.
Use these skills when relevant: Goal Setting, Strengths, Flexible Thinking, Problem Solving, Self-Acceptance, Emotional Regulation, Coping Skills, Optimistic Thinking.
Guidelines:
- 2-4 short sentences.
- Empathy first: reflect and normalize.
- Then one small, concrete nudge (no lectures, no long lists).

At the very end of your reply, add 3-5 micro-goals for TODAY, each on its own line:
- 2-6 words
- starts with a verb or time hint (e.g., "5-minute ...")
- doable in <=15 minutes
- examples: "Drink 1 glass water", "5-minute stretch", "List 3 gratitudes", "Text a friend hello".`

// TurnReply is the outcome of one processed user turn.
type TurnReply struct {
	State    State        `json:"state"`
	Messages []db.Message `json:"messages"` // emitted assistant messages, persisted
	Outcome  Outcome      `json:"-"`
}

// Engine processes user turns for the chat feature: it runs the guided
// state machine, delegates to the LLM when the session is idle, and
// fans results out to the goal extractor and the daily summary.
//
// One logical session exists per user per date; turns against the same
// date are serialized so two turns can never race to advance the step
// index or create duplicate daily conversations.
type Engine struct {
	store       *db.Store
	provider    ai.Provider
	cat         *catalog.Catalog
	userID      string
	temperature float64

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	states map[string]State
}

// NewEngine wires the turn engine.
func NewEngine(store *db.Store, provider ai.Provider, cat *catalog.Catalog, userID string, temperature float64) *Engine {
	return &Engine{
		store:       store,
		provider:    provider,
		cat:         cat,
		userID:      userID,
		temperature: temperature,
		locks:       make(map[string]*sync.Mutex),
		states:      make(map[string]State),
	}
}

// Catalog exposes the exercise catalog the engine runs against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// State returns the current session state for a date.
func (e *Engine) State(date string) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.states[date]
}

func (e *Engine) lockFor(date string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[date]
	if !ok {
		l = &sync.Mutex{}
		e.locks[date] = l
	}
	return l
}

// ProcessTurn handles one inbound user turn for a date: persists the
// user message, advances the guided session or produces a free-form
// reply, persists every emitted assistant message, and updates goal
// suggestions and the daily digest.
//
// On an LLM or persistence failure the turn fails as a whole: no
// session state is committed and no assistant message is stored. The
// already-persisted user message stays; callers show a generic
// error in the visible transcript only.
func (e *Engine) ProcessTurn(ctx context.Context, date string, in TurnInput) (*TurnReply, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && in.StartExerciseID == "" {
		return nil, &ai.ValidationError{Msg: "empty turn"}
	}
	in.Text = text

	// One turn at a time per conversation, including while the LLM call
	// is outstanding.
	lock := e.lockFor(date)
	lock.Lock()
	defer lock.Unlock()

	state := e.State(date)

	titleHint := text
	if titleHint == "" {
		if ex := e.cat.Get(in.StartExerciseID); ex != nil {
			titleHint = "Start: " + ex.Title
		}
	}
	conv, err := e.store.EnsureDailyConversation(ctx, e.userID, date, titleHint)
	if err != nil {
		return nil, err
	}

	if text != "" {
		if _, err := e.store.AppendMessage(ctx, conv.ID, db.RoleUser, text); err != nil {
			return nil, err
		}
	}

	res := Advance(state, in, e.cat)

	reply := &TurnReply{Outcome: res.Outcome}

	for _, r := range res.Replies {
		msg, err := e.store.AppendMessage(ctx, conv.ID, db.RoleAssistant, r)
		if err != nil {
			return nil, err
		}
		reply.Messages = append(reply.Messages, *msg)
	}

	if res.Outcome == OutcomeCompleted && len(res.Replies) > 0 {
		// The wrap-up mentions concrete follow-ups; mine it like any
		// other assistant reply.
		e.recordReplyArtifacts(ctx, conv.ID, date, res.Replies[len(res.Replies)-1])
	}

	if res.Outcome == OutcomeFreeForm && text != "" {
		assistantText, err := e.freeFormReply(ctx, text)
		if err != nil {
			return nil, err
		}
		msg, err := e.store.AppendMessage(ctx, conv.ID, db.RoleAssistant, assistantText)
		if err != nil {
			return nil, err
		}
		reply.Messages = append(reply.Messages, *msg)
		e.recordReplyArtifacts(ctx, conv.ID, date, assistantText)
	}

	e.mu.Lock()
	e.states[date] = res.State
	e.mu.Unlock()
	reply.State = res.State
	return reply, nil
}

// freeFormReply sends the user text to the model under the fixed
// journaling persona.
func (e *Engine) freeFormReply(ctx context.Context, text string) (string, error) {
	res, err := e.provider.Complete(ctx, &ai.ChatRequest{
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: personaPrompt},
			{Role: ai.RoleUser, Content: text},
		},
		Temperature: e.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("reply generation failed: %w", err)
	}
	return res.Text, nil
}

// recordReplyArtifacts extracts micro-goal suggestions from an
// assistant reply and refreshes the daily digest. Both writes are
// best-effort: the reply is already shown and stored, so failures are
// logged and discarded.
func (e *Engine) recordReplyArtifacts(ctx context.Context, conversationID, date, replyText string) {
	if suggested := goals.FromReply(replyText); len(suggested) > 0 {
		if err := e.store.AddSuggestions(ctx, e.userID, conversationID, date, suggested); err != nil {
			logging.Warnf("dropping %d goal suggestions for %s: %v", len(suggested), date, err)
		}
	}
	if err := summary.QuickUpdate(ctx, e.store, e.userID, date, replyText); err != nil {
		logging.Warnf("incremental summary update failed for %s: %v", date, err)
	}
}
