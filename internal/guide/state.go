// Package guide drives the guided conversation: a small state machine
// that walks a user through a catalog exercise step by step, or hands
// the turn to the LLM-backed free-form reply path.
package guide

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/daybookhq/daybook/internal/catalog"
)

// State is the per-conversation guided session state. There is exactly
// one per conversation; starting a new exercise replaces any active one.
type State struct {
	ActiveExerciseID string `json:"active_exercise_id,omitempty"`
	StepIndex        int    `json:"step_index"`
	// OptedOut suppresses auto re-entry after an explicit exit until a
	// fresh start request arrives.
	OptedOut bool `json:"opted_out"`
	// IntroShownFor records the exercise id whose intro was emitted, so
	// the intro appears at most once per (session, exercise) pair.
	IntroShownFor string `json:"intro_shown_for,omitempty"`
}

// InExercise reports whether an exercise is active.
func (s State) InExercise() bool {
	return s.ActiveExerciseID != ""
}

// TurnInput is one inbound user turn. StartExerciseID carries the
// external start/switch signal (catalog selection or session request).
type TurnInput struct {
	Text            string `json:"text"`
	StartExerciseID string `json:"start_exercise_id,omitempty"`
}

// Outcome classifies what a turn produced.
type Outcome int

const (
	// OutcomeFreeForm means no scripted handling applied; the turn goes
	// to the LLM-backed reply path.
	OutcomeFreeForm Outcome = iota
	OutcomeIntro
	OutcomeStep
	OutcomeExit
	OutcomeCompleted
)

// TurnResult is the state machine's decision for one turn.
type TurnResult struct {
	State   State
	Replies []string // scripted assistant messages, in emission order
	Outcome Outcome
	// Exercise is set for intro/step/completion outcomes.
	Exercise *catalog.Exercise
}

var (
	exitWords = regexp.MustCompile(`(?i)^(stop|exit|quit|cancel)$`)
	skipWords = regexp.MustCompile(`(?i)^(skip|next)$`)
)

const stepFooter = "(Reply \"skip\" to skip, \"exit\" to leave)"

// Advance runs one turn through the state machine. It is pure: all
// persistence and LLM work is left to the caller based on the result.
func Advance(state State, in TurnInput, cat *catalog.Catalog) TurnResult {
	res := TurnResult{State: state, Outcome: OutcomeFreeForm}

	// Start/switch request: enter the exercise and clear any opt-out.
	// An explicit request for the already-active exercise keeps its
	// progress but forces the intro again.
	if in.StartExerciseID != "" {
		if cat.Get(in.StartExerciseID) != nil {
			if res.State.ActiveExerciseID != in.StartExerciseID {
				res.State.ActiveExerciseID = in.StartExerciseID
				res.State.StepIndex = 0
			}
			res.State.OptedOut = false
			res.State.IntroShownFor = ""
		}
	}

	// Exercise removed from the catalog mid-session: fall back to chat.
	if res.State.InExercise() && cat.Get(res.State.ActiveExerciseID) == nil {
		res.State = State{}
	}

	ex := cat.Get(res.State.ActiveExerciseID)

	// Intro is emitted once on entry, unless the user opted out. The
	// turn ends there: any text that arrived with the start signal must
	// not also consume Step 1 before the user has seen it.
	if ex != nil && !res.State.OptedOut && res.State.IntroShownFor != ex.ID {
		res.Replies = append(res.Replies, introText(ex))
		res.State.IntroShownFor = ex.ID
		res.Outcome = OutcomeIntro
		res.Exercise = ex
		return res
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return res
	}

	if ex == nil {
		res.Outcome = OutcomeFreeForm
		return res
	}

	if exitWords.MatchString(text) {
		res.State = State{OptedOut: true}
		res.Replies = append(res.Replies, "Okay, exiting coach mode. How can I help now?")
		res.Outcome = OutcomeExit
		res.Exercise = ex
		return res
	}

	next := res.State.StepIndex + 1
	if next < len(ex.Steps) {
		prefix := "Great."
		if skipWords.MatchString(text) {
			prefix = "No problem."
		}
		res.State.StepIndex = next
		res.Replies = append(res.Replies,
			fmt.Sprintf("%s Step %d: %s\n%s", prefix, next+1, ex.Steps[next], stepFooter))
		res.Outcome = OutcomeStep
		res.Exercise = ex
		return res
	}

	// Final step answered (or skipped): wrap up and return to idle.
	res.State = State{}
	res.Replies = append(res.Replies, wrapUpText(ex))
	res.Outcome = OutcomeCompleted
	res.Exercise = ex
	return res
}

func introText(ex *catalog.Exercise) string {
	return strings.Join([]string{
		fmt.Sprintf("Let's do \"%s\" (%dmin, %s).", ex.Title, ex.DurationMin, ex.Skill),
		fmt.Sprintf("Step 1: %s", ex.Steps[0]),
		stepFooter,
	}, "\n")
}

func wrapUpText(ex *catalog.Exercise) string {
	return strings.Join([]string{
		fmt.Sprintf("Nice work on \"%s\".", ex.Title),
		"In one line, what did you notice in your body or mind?",
		"Tiny follow-ups for today:",
		"- " + ex.GoalTitle,
		"- 3-minute check-in later",
		"- Share one insight with someone",
	}, "\n")
}
