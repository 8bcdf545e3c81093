// Package audit keeps an optional log of password checks. Only masked
// passwords are ever stored.
package audit

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/hatchdotlol/passcheck/pkg/strength"
	"github.com/oklog/ulid/v2"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

var ErrInvalidInput = errors.New("invalid input")

type Record struct {
	ID     string    `json:"id"`
	Ts     time.Time `json:"ts"`
	Masked string    `json:"masked"`
	Score  int       `json:"score"`
	Label  string    `json:"label"`
}

// Store persists records. Recent returns the newest records first.
type Store interface {
	Insert(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}

// NewRecord masks the password and stamps the record with a ULID, so ids
// sort in creation order.
func NewRecord(password string, res strength.Result, now time.Time) (Record, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:     id.String(),
		Ts:     now.UTC().Truncate(time.Millisecond),
		Masked: Mask(password),
		Score:  res.Score,
		Label:  string(res.Label),
	}, nil
}

// ClampLimit maps a requested page size onto [1, MaxRecentLimit], using
// DefaultRecentLimit for non-positive values.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	}
	return limit
}
