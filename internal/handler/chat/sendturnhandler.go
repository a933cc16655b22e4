package chat

import (
	"net/http"
	"time"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/guide"
	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// Send one user turn to the journaling chat
func SendTurnHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req types.SendTurnRequest
		if err := httputil.ParseJSON(r, &req); err != nil {
			httputil.ErrorWithCode(w, http.StatusBadRequest, err.Error())
			return
		}
		date := req.Date
		if date == "" {
			date = db.ToDateISO(time.Now())
		}

		reply, err := svcCtx.Engine.ProcessTurn(ctx, date, guide.TurnInput{
			Text:            req.Text,
			StartExerciseID: req.ExerciseID,
		})
		if err != nil {
			logging.Errorf("turn failed for %s: %v", date, err)
			httputil.Error(w, err)
			return
		}

		httputil.OkJSON(w, &types.SendTurnResponse{
			Date:     date,
			State:    reply.State,
			Messages: reply.Messages,
		})
	}
}
