package chat

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// Get a date's transcript in replay order
func GetHistoryByDayHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		date := httputil.PathVar(r, "date")

		mood := ""
		conv, err := svcCtx.DB.GetConversationByDate(ctx, svcCtx.UserID, date)
		switch {
		case err == nil:
			mood = conv.Mood
		case errors.Is(err, sql.ErrNoRows):
			// No journal for this date yet; an empty transcript is fine.
		default:
			httputil.Error(w, err)
			return
		}

		msgs, err := svcCtx.DB.MessagesForDate(ctx, svcCtx.UserID, date)
		if err != nil {
			httputil.Error(w, err)
			return
		}

		httputil.OkJSON(w, &types.HistoryResponse{
			Date:     date,
			Mood:     mood,
			Messages: msgs,
		})
	}
}
