package goals

import (
	"net/http"
	"strings"
	"time"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// Add a goal for a date
func AddGoalHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddGoalRequest
		if err := httputil.ParseJSON(r, &req); err != nil {
			httputil.ErrorWithCode(w, http.StatusBadRequest, err.Error())
			return
		}
		title := strings.TrimSpace(req.Title)
		if title == "" {
			httputil.ErrorWithCode(w, http.StatusBadRequest, "title is required")
			return
		}
		date := req.Date
		if date == "" {
			date = db.ToDateISO(time.Now())
		}

		goal, err := svcCtx.DB.AddGoal(r.Context(), svcCtx.UserID, title, date, req.SourceConversationID)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, goal)
	}
}
