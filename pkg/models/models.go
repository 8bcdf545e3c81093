package models

import (
	"github.com/hatchdotlol/passcheck/pkg/audit"
	"github.com/hatchdotlol/passcheck/pkg/strength"
)

// Fields are untyped so that absent and mistyped values reach validation.
type CheckPassword struct {
	Password any `json:"password"`
}

type GeneratePassword struct {
	Length any `json:"length"`
}

type CheckResp struct {
	Success bool            `json:"success"`
	Result  strength.Result `json:"result"`
}

type GenerateResp struct {
	Success  bool   `json:"success"`
	Password string `json:"password"`
}

type ErrorResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RecentResp struct {
	Records []audit.Record `json:"records"`
}

type RootResp struct {
	StartTime int64  `json:"startTime"`
	Version   string `json:"version"`
}
