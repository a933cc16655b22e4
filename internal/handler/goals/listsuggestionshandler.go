package goals

import (
	"database/sql"
	"errors"
	"net/http"

	goalrules "github.com/daybookhq/daybook/internal/goals"
	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// List a date's chat-derived goal suggestions plus static mood-keyed
// ideas the user hasn't already added
func ListSuggestionsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		date := httputil.PathVar(r, "date")

		suggestions, err := svcCtx.DB.SuggestionsByDate(ctx, svcCtx.UserID, date)
		if err != nil {
			httputil.Error(w, err)
			return
		}

		mood := ""
		conv, err := svcCtx.DB.GetConversationByDate(ctx, svcCtx.UserID, date)
		if err == nil {
			mood = conv.Mood
		} else if !errors.Is(err, sql.ErrNoRows) {
			httputil.Error(w, err)
			return
		}

		list, err := svcCtx.DB.GoalsByDate(ctx, svcCtx.UserID, date)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		existing := make([]string, 0, len(list)+len(suggestions))
		for _, g := range list {
			existing = append(existing, g.Title)
		}
		for _, s := range suggestions {
			existing = append(existing, s.Title)
		}

		httputil.OkJSON(w, &types.SuggestionListResponse{
			Date:        date,
			Suggestions: suggestions,
			Static:      goalrules.Suggested(mood, existing),
		})
	}
}
