package api

import (
	"github.com/hatchdotlol/passcheck/pkg/audit"
	"github.com/hatchdotlol/passcheck/pkg/generate"
	"github.com/hatchdotlol/passcheck/pkg/metrics"
	"github.com/hatchdotlol/passcheck/pkg/util"
)

// Server carries the handles the handlers need. Recorder and Metrics may be
// nil.
type Server struct {
	Config    util.Config
	Generator *generate.Generator
	Recorder  *audit.Recorder
	Metrics   *metrics.Metrics
}

func NewServer(cfg util.Config, recorder *audit.Recorder, m *metrics.Metrics) *Server {
	return &Server{
		Config:    cfg,
		Generator: generate.New(generate.WithMaxLength(cfg.MaxLength)),
		Recorder:  recorder,
		Metrics:   m,
	}
}
