package guide

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/db/migrations"
	"github.com/daybookhq/daybook/internal/logging"
)

// fakeProvider returns a canned reply, or fails when err is set.
type fakeProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeProvider) Complete(ctx context.Context, req *ai.ChatRequest) (*ai.ChatReply, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ai.ChatReply{Text: f.reply}, nil
}

// countingProvider tracks how many completions run at once.
type countingProvider struct {
	mu      sync.Mutex
	active  int
	maxSeen int
	reply   string
}

func (p *countingProvider) Complete(ctx context.Context, req *ai.ChatRequest) (*ai.ChatReply, error) {
	p.mu.Lock()
	p.active++
	if p.active > p.maxSeen {
		p.maxSeen = p.active
	}
	p.mu.Unlock()

	// Stay in flight long enough for competing turns to pile up.
	time.Sleep(5 * time.Millisecond)

	p.mu.Lock()
	p.active--
	p.mu.Unlock()
	return &ai.ChatReply{Text: p.reply}, nil
}

func testEngine(t *testing.T, provider ai.Provider) (*Engine, *db.Store) {
	t.Helper()
	logging.Disable()
	migrations.QuietMode = true

	store, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return NewEngine(store, provider, testCatalog(t), "user-1", 0.7), store
}

const engineDate = "2026-08-31"

func TestProcessTurnFreeFormPersistsBothSides(t *testing.T) {
	provider := &fakeProvider{reply: "That sounds hard. Try one small reset.\n- 5-minute stretch\n- Drink 1 glass water"}
	engine, store := testEngine(t, provider)
	ctx := context.Background()

	reply, err := engine.ProcessTurn(ctx, engineDate, TurnInput{Text: "Feeling scattered today"})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Outcome != OutcomeFreeForm || len(reply.Messages) != 1 {
		t.Fatalf("reply = %+v", reply)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}

	msgs, err := store.MessagesForDate(ctx, "user-1", engineDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[0].Role != db.RoleUser || msgs[1].Role != db.RoleAssistant {
		t.Fatalf("transcript = %+v", msgs)
	}

	// Goal lines in the reply become stored suggestions.
	sugg, err := store.SuggestionsByDate(ctx, "user-1", engineDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(sugg) != 2 {
		t.Errorf("got %d suggestions, want 2", len(sugg))
	}

	// And the daily digest is refreshed.
	if _, err := store.GetDailySummary(ctx, "user-1", engineDate); err != nil {
		t.Errorf("daily summary missing after turn: %v", err)
	}
}

func TestProcessTurnLLMFailureKeepsUserMessage(t *testing.T) {
	provider := &fakeProvider{err: &ai.TransportError{Err: errors.New("connection refused")}}
	engine, store := testEngine(t, provider)
	ctx := context.Background()

	_, err := engine.ProcessTurn(ctx, engineDate, TurnInput{Text: "hello"})
	var terr *ai.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}

	msgs, err := store.MessagesForDate(ctx, "user-1", engineDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Role != db.RoleUser {
		t.Fatalf("transcript after failure = %+v, want only the user message", msgs)
	}

	// No session state sticks after a failed turn.
	if engine.State(engineDate) != (State{}) {
		t.Errorf("state = %+v, want zero", engine.State(engineDate))
	}
}

func TestProcessTurnGuidedFlowBypassesLLM(t *testing.T) {
	provider := &fakeProvider{reply: "should not be used"}
	engine, store := testEngine(t, provider)
	ctx := context.Background()

	reply, err := engine.ProcessTurn(ctx, engineDate, TurnInput{StartExerciseID: "breath-3"})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Outcome != OutcomeIntro {
		t.Fatalf("outcome = %v, want intro", reply.Outcome)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times during scripted turn", provider.calls)
	}

	// Scripted replies are persisted like any assistant message.
	msgs, err := store.MessagesForDate(ctx, "user-1", engineDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Role != db.RoleAssistant || !strings.Contains(msgs[0].Content, "Step 1") {
		t.Fatalf("transcript = %+v", msgs)
	}

	// Step advance on the next turn.
	reply, err = engine.ProcessTurn(ctx, engineDate, TurnInput{Text: "done"})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Outcome != OutcomeStep || engine.State(engineDate).StepIndex != 1 {
		t.Errorf("step turn = %+v, state = %+v", reply, engine.State(engineDate))
	}
}

func TestProcessTurnCompletionRecordsFollowUps(t *testing.T) {
	provider := &fakeProvider{}
	engine, store := testEngine(t, provider)
	ctx := context.Background()

	if _, err := engine.ProcessTurn(ctx, engineDate, TurnInput{StartExerciseID: "breath-3"}); err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"ok", "ok", "felt calmer"} {
		if _, err := engine.ProcessTurn(ctx, engineDate, TurnInput{Text: text}); err != nil {
			t.Fatal(err)
		}
	}

	if engine.State(engineDate) != (State{}) {
		t.Errorf("state after completion = %+v", engine.State(engineDate))
	}

	// The wrap-up's follow-up goals land in suggestions.
	sugg, err := store.SuggestionsByDate(ctx, "user-1", engineDate)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, s := range sugg {
		if s.Title == "3-minute check-in later" {
			found = true
		}
	}
	if !found {
		t.Errorf("wrap-up follow-ups not mined: %+v", sugg)
	}
}

func TestProcessTurnSerializesTurnsPerDate(t *testing.T) {
	provider := &countingProvider{reply: "Noted. What else is on your mind?"}
	engine, store := testEngine(t, provider)
	ctx := context.Background()

	// No conversation exists yet, so every turn races to create it.
	const turns = 6
	var wg sync.WaitGroup
	errs := make(chan error, turns)
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := engine.ProcessTurn(ctx, engineDate, TurnInput{Text: fmt.Sprintf("thought %d", i)})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}

	// The per-date lock is held across the provider call, so at most one
	// completion may ever be in flight for one date.
	if provider.maxSeen != 1 {
		t.Errorf("observed %d concurrent completions, want 1", provider.maxSeen)
	}

	// Exactly one conversation row, holding every turn.
	dates, err := store.RecentDates(ctx, "user-1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(dates) != 1 {
		t.Errorf("RecentDates = %v, want one date", dates)
	}
	msgs, err := store.MessagesForDate(ctx, "user-1", engineDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2*turns {
		t.Errorf("transcript has %d messages, want %d", len(msgs), 2*turns)
	}
}

func TestProcessTurnConcurrentStepAdvances(t *testing.T) {
	engine, _ := testEngine(t, &fakeProvider{})
	ctx := context.Background()

	if _, err := engine.ProcessTurn(ctx, engineDate, TurnInput{StartExerciseID: "breath-3"}); err != nil {
		t.Fatal(err)
	}

	// Two racing turns must advance the step index once each, never both
	// from the same starting point.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := engine.ProcessTurn(ctx, engineDate, TurnInput{Text: "ok"}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := engine.State(engineDate).StepIndex; got != 2 {
		t.Errorf("step index = %d, want 2", got)
	}
}

func TestProcessTurnEmptyInputRejected(t *testing.T) {
	engine, _ := testEngine(t, &fakeProvider{})

	_, err := engine.ProcessTurn(context.Background(), engineDate, TurnInput{Text: "   "})
	var verr *ai.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}
