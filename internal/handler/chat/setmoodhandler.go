package chat

import (
	"net/http"
	"strings"

	"github.com/daybookhq/daybook/internal/httputil"
	"github.com/daybookhq/daybook/internal/svc"
	"github.com/daybookhq/daybook/internal/types"
)

// Tag a date's conversation with a mood
func SetMoodHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httputil.PathVar(r, "date")

		var req types.SetMoodRequest
		if err := httputil.ParseJSON(r, &req); err != nil {
			httputil.ErrorWithCode(w, http.StatusBadRequest, err.Error())
			return
		}
		mood := strings.TrimSpace(strings.ToLower(req.Mood))
		if mood == "" {
			httputil.ErrorWithCode(w, http.StatusBadRequest, "mood is required")
			return
		}

		if err := svcCtx.DB.SetMood(r.Context(), svcCtx.UserID, date, mood); err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.OkJSON(w, map[string]string{"date": date, "mood": mood})
	}
}
