package chatlog

import (
	"regexp"
	"strings"
)

// Candidate is one raw (date, time, body) tuple cut out of the export text.
// The body may span multiple lines, up to the next recognized header.
type Candidate struct {
	RawDate string
	RawTime string
	RawBody string
}

// headerPattern recognizes one export header style. Patterns are tried in
// priority order; the first one that matches at least one header claims the
// whole document. Headers must be anchored at a line start so date-like text
// inside a message body is never mistaken for a new header.
type headerPattern struct {
	name string
	re   *regexp.Regexp
}

var headerPatterns = []headerPattern{
	{
		// 12/5/23, 9:00 AM - Alice: Hello
		name: "dashed",
		re:   regexp.MustCompile(`(?m)^(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?(?:[\s\x{202F}\x{00A0}]?[AaPp][Mm])?) - `),
	},
	{
		// [12/5/23, 9:00:31 AM] Alice: Hello
		name: "bracketed",
		re:   regexp.MustCompile(`(?m)^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?(?:[\s\x{202F}\x{00A0}]?[AaPp][Mm])?)\] `),
	},
}

// Segment splits raw export text into candidate entries in document order.
// Each body runs from the end of its header to the start of the next header
// of the same pattern, or to end of input. Returns nil when no pattern
// matches anywhere in the text.
func Segment(text string) []Candidate {
	for _, pat := range headerPatterns {
		headers := pat.re.FindAllStringSubmatchIndex(text, -1)
		if len(headers) == 0 {
			continue
		}
		out := make([]Candidate, 0, len(headers))
		for i, h := range headers {
			bodyEnd := len(text)
			if i+1 < len(headers) {
				bodyEnd = headers[i+1][0]
			}
			out = append(out, Candidate{
				RawDate: text[h[2]:h[3]],
				RawTime: text[h[4]:h[5]],
				RawBody: strings.TrimSpace(text[h[1]:bodyEnd]),
			})
		}
		return out
	}
	return nil
}
