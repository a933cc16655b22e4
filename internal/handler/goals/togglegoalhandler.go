package goals

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// Flip a goal's done flag
func ToggleGoalHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httputil.PathVar(r, "id")

		var req types.ToggleGoalRequest
		if err := httputil.ParseJSON(r, &req); err != nil {
			httputil.ErrorWithCode(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svcCtx.DB.ToggleGoal(r.Context(), svcCtx.UserID, id, req.Done); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "goal not found")
				return
			}
			httputil.Error(w, err)
			return
		}
		httputil.OkJSON(w, map[string]any{"id": id, "done": req.Done})
	}
}
