package goals

import (
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// List a date's goals with completion stats
func ListGoalsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		date := httputil.PathVar(r, "date")

		list, err := svcCtx.DB.GoalsByDate(ctx, svcCtx.UserID, date)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		stats, err := svcCtx.DB.GoalStatsForDate(ctx, svcCtx.UserID, date)
		if err != nil {
			httputil.Error(w, err)
			return
		}

		httputil.OkJSON(w, &types.GoalListResponse{
			Date:  date,
			Goals: list,
			Stats: stats,
		})
	}
}
