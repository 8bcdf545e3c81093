package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/hatchdotlol/passcheck/pkg/generate"
	"github.com/hatchdotlol/passcheck/pkg/models"
	"github.com/hatchdotlol/passcheck/pkg/strength"
	"github.com/hatchdotlol/passcheck/pkg/util"
)

func (s *Server) PasswordRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/check-password", s.checkPassword)
	r.Post("/generate-password", s.generatePassword)

	r.Group(func(r chi.Router) {
		r.Use(s.EnsureAdmin)
		r.Get("/audit/recent", s.recentChecks)
	})

	return r
}

// Every input gets a 200; unreadable bodies are scored as an absent
// password.
func (s *Server) checkPassword(w http.ResponseWriter, r *http.Request) {
	var form models.CheckPassword
	if body := util.HttpBody(w, r, s.Config.MaxBodyBytes); body != nil {
		if err := json.Unmarshal(body, &form); err != nil {
			form = models.CheckPassword{}
		}
	}

	result := strength.EvaluateInput(form.Password)
	s.Metrics.Check(string(result.Label))

	pw, _ := form.Password.(string)
	s.Recorder.Record(pw, result)

	sendJSON(w, http.StatusOK, models.CheckResp{Success: true, Result: result})
}

func (s *Server) generatePassword(w http.ResponseWriter, r *http.Request) {
	var form models.GeneratePassword
	if body := util.HttpBody(w, r, s.Config.MaxBodyBytes); body != nil {
		if err := json.Unmarshal(body, &form); err != nil {
			form = models.GeneratePassword{}
		}
	}

	password, err := s.generate(form.Length)
	if err != nil {
		if errors.Is(err, generate.ErrInvalidLength) {
			s.Metrics.Rejected()
			sendError(w, http.StatusBadRequest, err.Error())
			return
		}

		sentry.CaptureException(err)
		sendError(w, http.StatusInternalServerError, somethingWentWrong)
		return
	}

	s.Metrics.Generated()
	sendJSON(w, http.StatusOK, models.GenerateResp{Success: true, Password: password})
}

func (s *Server) generate(length any) (string, error) {
	n, err := generate.ParseLength(length)
	if err != nil {
		return "", err
	}
	return s.Generator.Generate(n)
}
