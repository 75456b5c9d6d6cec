// Package account derives deterministic pseudo-metrics for a social-media
// handle. Every value is a pure function of the handle text: the same handle
// always produces the same metrics.
package account

import (
	"errors"
	"math"
	"strings"
)

// ErrEmptyHandle indicates a handle that is blank after normalization.
var ErrEmptyHandle = errors.New("handle cannot be empty")

// ErrInvalidFormat indicates a handle containing characters outside [a-z0-9._].
var ErrInvalidFormat = errors.New("invalid handle format")

const (
	followersBase       = 1000
	followersMultiplier = 157
	followersRange      = 500000
	viewsRatioBase      = 0.3
	viewsRatioStep      = 20
	engagementBase      = 1.5
	engagementDivisor   = 10
	engagementModulus   = 50
	viewsModulus        = 10
)

// Metrics is the full set of derived values for one handle.
type Metrics struct {
	Handle         string  `json:"handle"`
	Name           string  `json:"name"`
	Followers      int     `json:"followers"`
	AverageViews   int     `json:"averageViews"`
	Category       string  `json:"category"`
	EngagementRate float64 `json:"engagementRate"`
	Location       string  `json:"location"`
}

// Normalize canonicalizes raw user input: surrounding whitespace is trimmed,
// a single leading @ is stripped, and the result is lowercased. Handles are a
// case-insensitive identity, so derivation always runs on the canonical form.
func Normalize(raw string) string {
	handle := strings.TrimSpace(raw)
	handle = strings.TrimPrefix(handle, "@")
	handle = strings.TrimSpace(handle)

	return strings.ToLower(handle)
}

// Validate checks a normalized handle against the allowed alphabet.
func Validate(handle string) error {
	if handle == "" {
		return ErrEmptyHandle
	}

	for _, r := range handle {
		if !isHandleRune(r) {
			return ErrInvalidFormat
		}
	}

	return nil
}

func isHandleRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_'
}

// Hash accumulates the byte values of the handle into a single integer. All
// derived metrics index off this value.
func Hash(handle string) int {
	sum := 0
	for i := 0; i < len(handle); i++ {
		sum += int(handle[i])
	}

	return sum
}

// Derive computes the full metric set for a normalized, validated handle.
func Derive(handle string) Metrics {
	hash := Hash(handle)

	followers := followersBase + (hash*followersMultiplier)%followersRange
	viewsRatio := viewsRatioBase + float64(hash%viewsModulus)/viewsRatioStep
	engagement := engagementBase + float64(hash%engagementModulus)/engagementDivisor

	return Metrics{
		Handle:         handle,
		Name:           displayName(handle, hash),
		Followers:      followers,
		AverageViews:   int(math.Floor(float64(followers) * viewsRatio)),
		Category:       Categories[hash%len(Categories)],
		EngagementRate: round2(engagement),
		Location:       Locations[hash%len(Locations)],
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
