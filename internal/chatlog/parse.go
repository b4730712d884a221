// Package chatlog parses exported chat logs into typed message records.
//
// The pipeline is segment -> normalize -> split attribution -> build. It is
// all-or-nothing: either every entry gets a fully resolved timestamp and a
// non-empty sender, or parsing fails with one of the sentinel errors below
// and no records are returned.
package chatlog

import (
	"errors"
	"time"

	"github.com/avasilev/chatlens/internal/model"
)

// MediaPlaceholder marks a message whose attachment was stripped from the
// export.
const MediaPlaceholder = "<Media omitted>"

var (
	// ErrNoMessages means no header pattern matched the export text.
	ErrNoMessages = errors.New("no messages matched a known export format")
	// ErrTimestampFormat means no date/time hypothesis parsed the whole batch.
	ErrTimestampFormat = errors.New("no date/time format parsed the whole export")
	// ErrEncoding means the input was neither valid UTF-8 nor UTF-16.
	ErrEncoding = errors.New("export is neither valid UTF-8 nor UTF-16")
)

// Parse turns decoded export text into message records in document order.
func Parse(text string) ([]model.Message, error) {
	cands := Segment(text)
	if len(cands) == 0 {
		return nil, ErrNoMessages
	}
	stamps, err := Normalize(cands)
	if err != nil {
		return nil, err
	}
	msgs := make([]model.Message, len(cands))
	for i, c := range cands {
		sender, body := SplitAttribution(c.RawBody)
		msgs[i] = buildMessage(stamps[i], sender, body)
	}
	return msgs, nil
}

// ParseExport decodes raw file bytes and parses them.
func ParseExport(data []byte) ([]model.Message, error) {
	text, err := DecodeExport(data)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

func buildMessage(ts time.Time, sender, body string) model.Message {
	return model.Message{
		Timestamp: ts,
		DateOnly:  time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()),
		Year:      ts.Year(),
		Month:     ts.Month(),
		Day:       ts.Day(),
		Hour:      ts.Hour(),
		Minute:    ts.Minute(),
		Weekday:   ts.Weekday().String(),
		Sender:    sender,
		Body:      body,
	}
}
