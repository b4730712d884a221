package chatlog

import (
	"regexp"
	"strings"
	"time"
)

// formatHypothesis pairs one date layout with one time layout. A hypothesis
// is adopted only when it parses every candidate in the batch; per-entry
// guessing could silently mix day-first and month-first interpretation
// within a single export.
type formatHypothesis struct {
	date  string
	clock string
}

// hypotheses in priority order: day-first before month-first, two-digit
// before four-digit year, 24h before 12h, without seconds before with.
var hypotheses = buildHypotheses()

var dateLayouts = []string{"2/1/06", "2/1/2006", "1/2/06", "1/2/2006"}

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04:05 PM"}

func buildHypotheses() []formatHypothesis {
	out := make([]formatHypothesis, 0, len(dateLayouts)*len(clockLayouts))
	for _, d := range dateLayouts {
		for _, c := range clockLayouts {
			out = append(out, formatHypothesis{date: d, clock: c})
		}
	}
	return out
}

// iOS exports separate the meridiem with U+202F (narrow no-break space),
// which Go's ASCII-only \s does not cover.
var meridiemRE = regexp.MustCompile(`(?i)[\s\x{202F}\x{00A0}]*([ap]m)$`)

// canonicalClock normalizes the raw time substring so one layout per
// hypothesis suffices: the meridiem, when present, becomes an upper-case
// token separated by a single space ("9:00 AM", regardless of the
// separator used in the export).
func canonicalClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := meridiemRE.FindStringSubmatchIndex(raw); m != nil {
		return raw[:m[0]] + " " + strings.ToUpper(raw[m[2]:m[3]])
	}
	return raw
}

// Normalize resolves every candidate's date and time against the first
// hypothesis that parses the entire batch. No hypothesis succeeding for all
// candidates is a batch-level failure: no partial result is ever returned.
func Normalize(cands []Candidate) ([]time.Time, error) {
	if len(cands) == 0 {
		return nil, ErrTimestampFormat
	}
	clocks := make([]string, len(cands))
	for i, c := range cands {
		clocks[i] = canonicalClock(c.RawTime)
	}
	for _, h := range hypotheses {
		layout := h.date + ", " + h.clock
		stamps := make([]time.Time, len(cands))
		ok := true
		for i, c := range cands {
			t, err := time.Parse(layout, c.RawDate+", "+clocks[i])
			if err != nil {
				ok = false
				break
			}
			stamps[i] = t
		}
		if ok {
			return stamps, nil
		}
	}
	return nil, ErrTimestampFormat
}
