package exercises

import (
	"net/http"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
)

// Get one exercise by id
func GetExerciseHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httputil.PathVar(r, "id")

		ex := svcCtx.Catalog.Get(id)
		if ex == nil {
			httputil.NotFound(w, "unknown exercise: "+id)
			return
		}
		httputil.OkJSON(w, ex)
	}
}
