package goals

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
)

// Delete a goal
func DeleteGoalHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httputil.PathVar(r, "id")

		if err := svcCtx.DB.DeleteGoal(r.Context(), svcCtx.UserID, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "goal not found")
				return
			}
			httputil.Error(w, err)
			return
		}
		httputil.OkJSON(w, map[string]string{"id": id, "status": "deleted"})
	}
}
