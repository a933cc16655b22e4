package summaries

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
)

// Get the stored daily summary for a date
func GetSummaryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httputil.PathVar(r, "date")

		sum, err := svcCtx.DB.GetDailySummary(r.Context(), svcCtx.UserID, date)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "no summary for "+date)
				return
			}
			httputil.Error(w, err)
			return
		}
		httputil.OkJSON(w, sum)
	}
}
