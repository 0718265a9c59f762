package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const runIDTimeLayout = "20060102T150405Z"

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// RunIDGenerator produces ids that sort by creation time, e.g.
// 20251214T180000Z-9f2c4a1b03de.
type RunIDGenerator struct {
	now func() time.Time
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{now: time.Now}
}

func (g *RunIDGenerator) NewID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	now := time.Now
	if g != nil && g.now != nil {
		now = g.now
	}
	return now().UTC().Format(runIDTimeLayout) + "-" + hex.EncodeToString(buf), nil
}
