package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/catalog"
	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/db/migrations"
	"github.com/daybookhq/daybook/internal/events"
	"github.com/daybookhq/daybook/internal/guide"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/summary"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

type fakeProvider struct {
	reply string
}

func (f *fakeProvider) Complete(ctx context.Context, req *ai.ChatRequest) (*ai.ChatReply, error) {
	return &ai.ChatReply{Text: f.reply}, nil
}

func testServer(t *testing.T) (*httptest.Server, *svc.ServiceContext) {
	t.Helper()
	logging.Disable()
	migrations.QuietMode = true

	store, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	subject := events.NewSubject()
	store.SetNotifier(subject)

	provider := &fakeProvider{reply: "You showed up today, that counts.\n- Drink 1 glass water\n- 5-minute stretch"}
	cat := catalog.Builtin()
	svcCtx := &svc.ServiceContext{
		Config:     *config.DefaultConfig(),
		UserID:     "user-1",
		DB:         store,
		Provider:   provider,
		Catalog:    cat,
		Engine:     guide.NewEngine(store, provider, cat, "user-1", 0.7),
		Summarizer: summary.New(store, provider),
		Events:     subject,
	}

	ts := httptest.NewServer(Router(svcCtx, Options{Quiet: true}))
	t.Cleanup(ts.Close)
	return ts, svcCtx
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health = %d", resp.StatusCode)
	}
}

func TestChatTurnRoundTrip(t *testing.T) {
	ts, _ := testServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/chat/turns", types.SendTurnRequest{
		Date: "2026-08-31",
		Text: "Feeling scattered today",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send turn = %d", resp.StatusCode)
	}

	var turn types.SendTurnResponse
	if err := json.NewDecoder(resp.Body).Decode(&turn); err != nil {
		t.Fatal(err)
	}
	if len(turn.Messages) != 1 || turn.Messages[0].Role != db.RoleAssistant {
		t.Fatalf("turn messages = %+v", turn.Messages)
	}

	// The transcript now holds both sides.
	hresp, err := http.Get(ts.URL + "/api/v1/chat/days/2026-08-31")
	if err != nil {
		t.Fatal(err)
	}
	defer hresp.Body.Close()
	var hist types.HistoryResponse
	if err := json.NewDecoder(hresp.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	if len(hist.Messages) != 2 {
		t.Errorf("history = %+v", hist.Messages)
	}

	// And the reply's goal lines surfaced as suggestions.
	sresp, err := http.Get(ts.URL + "/api/v1/suggestions/2026-08-31")
	if err != nil {
		t.Fatal(err)
	}
	defer sresp.Body.Close()
	var sugg types.SuggestionListResponse
	if err := json.NewDecoder(sresp.Body).Decode(&sugg); err != nil {
		t.Fatal(err)
	}
	if len(sugg.Suggestions) != 2 {
		t.Errorf("suggestions = %+v", sugg.Suggestions)
	}
}

func TestChatTurnEmptyTextRejected(t *testing.T) {
	ts, _ := testServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/chat/turns", types.SendTurnRequest{Text: "   "})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty turn = %d, want 400", resp.StatusCode)
	}
}

func TestGoalEndpoints(t *testing.T) {
	ts, _ := testServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/goals", types.AddGoalRequest{
		Title: "Drink 1 glass water",
		Date:  "2026-08-31",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add goal = %d", resp.StatusCode)
	}
	var goal db.Goal
	if err := json.NewDecoder(resp.Body).Decode(&goal); err != nil {
		t.Fatal(err)
	}

	lresp, err := http.Get(ts.URL + "/api/v1/goals/2026-08-31")
	if err != nil {
		t.Fatal(err)
	}
	defer lresp.Body.Close()
	var list types.GoalListResponse
	if err := json.NewDecoder(lresp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if list.Stats.Added != 1 || len(list.Goals) != 1 {
		t.Errorf("goal list = %+v", list)
	}

	// Toggle done over HTTP.
	payload, _ := json.Marshal(types.ToggleGoalRequest{Done: true})
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/goals/2026-08-31/"+goal.ID, bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	tresp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer tresp.Body.Close()
	if tresp.StatusCode != http.StatusOK {
		t.Errorf("toggle = %d", tresp.StatusCode)
	}
}

func TestExerciseEndpoints(t *testing.T) {
	ts, svcCtx := testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/exercises")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var list []catalog.Exercise
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != len(svcCtx.Catalog.List()) {
		t.Errorf("exercises = %d, want %d", len(list), len(svcCtx.Catalog.List()))
	}

	gresp, err := http.Get(ts.URL + "/api/v1/exercises/" + list[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	defer gresp.Body.Close()
	if gresp.StatusCode != http.StatusOK {
		t.Errorf("get exercise = %d", gresp.StatusCode)
	}

	nresp, err := http.Get(ts.URL + "/api/v1/exercises/does-not-exist")
	if err != nil {
		t.Fatal(err)
	}
	defer nresp.Body.Close()
	if nresp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown exercise = %d, want 404", nresp.StatusCode)
	}
}

func TestSummaryEndpoints(t *testing.T) {
	ts, _ := testServer(t)

	// No summary yet.
	resp, err := http.Get(ts.URL + "/api/v1/summaries/2026-08-31")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing summary = %d, want 404", resp.StatusCode)
	}

	// Journal something, then regenerate on demand.
	tresp := postJSON(t, ts.URL+"/api/v1/chat/turns", types.SendTurnRequest{
		Date: "2026-08-31",
		Text: "Long day but the evening walk helped.",
	})
	tresp.Body.Close()

	rresp := postJSON(t, ts.URL+"/api/v1/summaries/2026-08-31", nil)
	defer rresp.Body.Close()
	if rresp.StatusCode != http.StatusOK {
		t.Fatalf("regenerate = %d", rresp.StatusCode)
	}
	var sum db.DailySummary
	if err := json.NewDecoder(rresp.Body).Decode(&sum); err != nil {
		t.Fatal(err)
	}
	if sum.Summary == "" {
		t.Errorf("regenerated summary empty: %+v", sum)
	}
}
