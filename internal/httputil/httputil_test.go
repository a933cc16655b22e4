package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/db"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&ai.ValidationError{Msg: "bad"}, http.StatusBadRequest},
		{&ai.UpstreamError{Status: 500, Body: "x"}, http.StatusBadGateway},
		{&ai.TransportError{Err: errors.New("timeout")}, http.StatusServiceUnavailable},
		{db.ErrNotSignedIn, http.StatusUnauthorized},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		Error(rec, c.err)
		if rec.Code != c.want {
			t.Errorf("Error(%v) wrote %d, want %d", c.err, rec.Code, c.want)
		}

		var body ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("non-JSON error body: %s", rec.Body.String())
		} else if body.Code != c.want {
			t.Errorf("body code = %d, want %d", body.Code, c.want)
		}
	}
}

func TestErrorMapsWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("turn failed"), &ai.TransportError{Err: errors.New("refused")})
	rec := httptest.NewRecorder()
	Error(rec, wrapped)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("wrapped transport error wrote %d", rec.Code)
	}
}

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?limit=5&name=abc&bad=zz", nil)

	if got := QueryInt(r, "limit", 10); got != 5 {
		t.Errorf("QueryInt = %d", got)
	}
	if got := QueryInt(r, "missing", 10); got != 10 {
		t.Errorf("QueryInt default = %d", got)
	}
	if got := QueryInt(r, "bad", 10); got != 10 {
		t.Errorf("QueryInt non-numeric = %d", got)
	}
	if got := QueryString(r, "name", "d"); got != "abc" {
		t.Errorf("QueryString = %q", got)
	}
	if got := QueryString(r, "missing", "d"); got != "d" {
		t.Errorf("QueryString default = %q", got)
	}
}
