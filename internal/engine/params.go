package engine

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// Tuning is the live numeric configuration consumed on every event.
// All values are finite. Cap values of exactly zero mean "uncapped",
// never "cap at zero".
type Tuning struct {
	Sensitivity    float64
	Acceleration   float64
	SensitivityCap float64
	SpeedCap       float64
	Offset         float64
	Exponent       float64
	Midpoint       float64
	ScrollsPerTick float64
	Mode           Mode
}

// Pending holds staged textual values for the next tuning refresh, as
// handed over by an operator-facing control surface. An empty field keeps
// its current value.
type Pending struct {
	Sensitivity    string
	Acceleration   string
	SensitivityCap string
	SpeedCap       string
	Offset         string
	Exponent       string
	Midpoint       string
	ScrollsPerTick string
	Mode           string
}

// paramStore owns the live tuning and applies debounced bulk refreshes from
// staged textual values.
type paramStore struct {
	live       Tuning
	pending    Pending
	requested  bool
	nextUpdate time.Time

	applied  uint64 // refreshes adopted
	failures uint64 // fields that failed to parse, for diagnostics

	log *slog.Logger
}

func newParamStore(initial Tuning, log *slog.Logger) paramStore {
	return paramStore{live: initial, log: log}
}

// stage replaces the staged textual values. Staging alone changes nothing;
// the values are adopted on the next allowed refresh after requestRefresh.
func (s *paramStore) stage(p Pending) {
	s.pending = p
}

// requestRefresh marks a refresh as pending.
func (s *paramStore) requestRefresh() {
	s.requested = true
}

// maybeApply adopts the staged values if a refresh was requested and at
// least refreshInterval has passed since the last adoption. Each field
// parses independently; a malformed, non-finite, or out-of-domain value
// keeps the previous one rather than aborting the refresh. The domain
// rules match construction: sensitivity must be positive, caps and the
// scroll ratio non-negative.
func (s *paramStore) maybeApply(now time.Time) {
	if !s.requested {
		return
	}
	if now.Before(s.nextUpdate) {
		return
	}
	s.requested = false
	s.nextUpdate = now.Add(refreshInterval)

	failed := 0
	parseField(&s.live.Sensitivity, s.pending.Sensitivity, &failed, positive)
	parseField(&s.live.Acceleration, s.pending.Acceleration, &failed, nil)
	parseField(&s.live.SensitivityCap, s.pending.SensitivityCap, &failed, nonNegative)
	parseField(&s.live.SpeedCap, s.pending.SpeedCap, &failed, nonNegative)
	parseField(&s.live.Offset, s.pending.Offset, &failed, nil)
	parseField(&s.live.Exponent, s.pending.Exponent, &failed, nil)
	parseField(&s.live.Midpoint, s.pending.Midpoint, &failed, nil)
	parseField(&s.live.ScrollsPerTick, s.pending.ScrollsPerTick, &failed, nonNegative)
	parseMode(&s.live.Mode, s.pending.Mode, &failed)

	s.applied++
	s.failures += uint64(failed)
	if failed > 0 {
		s.log.Warn("tuning refresh applied with parse failures", "failed", failed)
	} else {
		s.log.Debug("tuning refresh applied", "mode", s.live.Mode.String())
	}
}

// parseField parses one staged value into dst. Empty means "keep"; a value
// that does not parse to a finite float, or that fails the field's domain
// check, keeps the previous one and counts as a failure.
func parseField(dst *float64, raw string, failed *int, valid func(float64) bool) {
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || (valid != nil && !valid(v)) {
		*failed++
		return
	}
	*dst = v
}

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }

// parseMode accepts curve names as well as the original numeric mode codes.
// Numeric codes are stored as-is even when out of range: the curve treats
// unknown modes as unaccelerated, matching the original behavior.
func parseMode(dst *Mode, raw string, failed *int) {
	if raw == "" {
		return
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "linear":
		*dst = ModeLinear
	case "classic":
		*dst = ModeClassic
	case "motivity":
		*dst = ModeMotivity
	default:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			*failed++
			return
		}
		*dst = Mode(n)
	}
}
