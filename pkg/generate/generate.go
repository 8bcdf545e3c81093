// Package generate produces random passwords from a fixed alphabet.
package generate

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	MinLength = 6

	// DefaultMaxLength bounds the allocation for a single request. Longer
	// requests fail with ReasonTooLong; WithMaxLength (MAX_LENGTH) raises it.
	DefaultMaxLength = 1024
)

// Alphabet is the 90-character set passwords are drawn from.
//
// Each random byte is reduced modulo len(Alphabet). Since 256 = 2*90 + 76,
// the first 76 characters are drawn with probability 3/256 and the last 14
// with 2/256. The bias is bounded and accepted.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{};:,.<>/?`~"

type Generator struct {
	mu        sync.Mutex
	rand      io.Reader
	shared    bool
	maxLength int
}

type Option func(*Generator)

// WithReader replaces the entropy source. Reads from a custom reader are
// serialised, so it need not be safe for concurrent use.
func WithReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
			g.shared = false
		}
	}
}

// WithMaxLength caps the accepted length. Values below MinLength are ignored.
func WithMaxLength(n int) Option {
	return func(g *Generator) {
		if n >= MinLength {
			g.maxLength = n
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rand:      rand.Reader,
		shared:    true,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

var std = New()

// Generate draws a password of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return std.Generate(length)
}

func (g *Generator) MaxLength() int {
	return g.maxLength
}

// Generate validates length and then draws one byte per character.
// Invalid lengths fail with *InvalidLengthError before any entropy is read.
func (g *Generator) Generate(length int) (string, error) {
	if err := g.validate(length); err != nil {
		return "", err
	}

	buf := make([]byte, length)
	if err := g.read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	var sb strings.Builder
	sb.Grow(length)
	for _, b := range buf {
		sb.WriteByte(Alphabet[int(b)%len(Alphabet)])
	}

	return sb.String(), nil
}

func (g *Generator) validate(length int) error {
	if length < MinLength {
		return &InvalidLengthError{Length: length, Reason: ReasonTooShort}
	}
	if length > g.maxLength {
		return &InvalidLengthError{Length: length, Reason: ReasonTooLong, Max: g.maxLength}
	}
	return nil
}

func (g *Generator) read(buf []byte) error {
	if !g.shared {
		g.mu.Lock()
		defer g.mu.Unlock()
	}
	_, err := io.ReadFull(g.rand, buf)
	return err
}
