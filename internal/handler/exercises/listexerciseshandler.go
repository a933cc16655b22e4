package exercises

import (
	"net/http"

	"github.com/daybookhq/daybook/internal/catalog"
	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
)

// List catalog exercises, optionally filtered by skill, duration or the
// featured flag
func ListExercisesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := svcCtx.Catalog

		var list []catalog.Exercise
		switch {
		case httputil.QueryString(r, "featured", "") == "true":
			list = cat.Featured()
		case httputil.QueryString(r, "skill", "") != "":
			list = cat.BySkill(catalog.Skill(httputil.QueryString(r, "skill", "")))
		case httputil.QueryInt(r, "max_minutes", 0) > 0:
			list = cat.ByMaxDuration(httputil.QueryInt(r, "max_minutes", 0))
		default:
			list = cat.List()
		}
		if list == nil {
			list = []catalog.Exercise{}
		}
		httputil.OkJSON(w, list)
	}
}
