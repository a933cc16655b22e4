package chat

import (
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// List recent journal dates, newest first
func ListDaysHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := httputil.QueryInt(r, "limit", 30)

		dates, err := svcCtx.DB.RecentDates(r.Context(), svcCtx.UserID, limit)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.OkJSON(w, &types.DaysResponse{Dates: dates})
	}
}
