package summaries

import (
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/svc"
)

// Regenerate a date's summary from its full transcript
func RegenerateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httputil.PathVar(r, "date")

		sum, err := svcCtx.Summarizer.Summarize(r.Context(), svcCtx.UserID, date)
		if err != nil {
			logging.Errorf("summarize %s failed: %v", date, err)
			httputil.Error(w, err)
			return
		}
		httputil.OkJSON(w, sum)
	}
}
