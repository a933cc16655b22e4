package summaries

import (
	"net/http"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
)

// List recent daily summaries, newest first
func ListRecentHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := httputil.QueryInt(r, "limit", 14)

		sums, err := svcCtx.DB.RecentSummaries(r.Context(), svcCtx.UserID, limit)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		if sums == nil {
			sums = []db.DailySummary{}
		}
		httputil.OkJSON(w, sums)
	}
}
