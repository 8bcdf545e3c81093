package api

import (
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/hatchdotlol/passcheck/pkg/audit"
	"github.com/hatchdotlol/passcheck/pkg/models"
)

func (s *Server) recentChecks(w http.ResponseWriter, r *http.Request) {
	limit := audit.DefaultRecentLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := s.Recorder.Recent(r.Context(), limit)
	if err != nil {
		sentry.CaptureException(err)
		sendError(w, http.StatusInternalServerError, somethingWentWrong)
		return
	}

	sendJSON(w, http.StatusOK, models.RecentResp{Records: records})
}
