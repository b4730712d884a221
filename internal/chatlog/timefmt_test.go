package chatlog

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeDayFirstTwoDigitYear(t *testing.T) {
	stamps, err := Normalize([]Candidate{
		{RawDate: "12/5/23", RawTime: "9:00 AM"},
		{RawDate: "13/5/23", RawTime: "10:30 PM"},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if stamps[0].Month() != time.May || stamps[0].Day() != 12 || stamps[0].Year() != 2023 {
		t.Fatalf("unexpected first stamp: %v", stamps[0])
	}
	if stamps[0].Hour() != 9 {
		t.Fatalf("expected hour 9, got %d", stamps[0].Hour())
	}
	if stamps[1].Hour() != 22 {
		t.Fatalf("expected hour 22, got %d", stamps[1].Hour())
	}
}

func TestNormalizeFallsThroughToMonthFirst(t *testing.T) {
	// A second component of 13 cannot be a month, so every day-first
	// hypothesis fails the batch and month-first is adopted.
	stamps, err := Normalize([]Candidate{
		{RawDate: "3/13/23", RawTime: "14:00"},
		{RawDate: "3/14/23", RawTime: "9:30"},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if stamps[0].Month() != time.March || stamps[0].Day() != 13 {
		t.Fatalf("expected month-first adoption, got %v", stamps[0])
	}
	if stamps[1].Day() != 14 {
		t.Fatalf("unexpected second stamp: %v", stamps[1])
	}
}

func TestNormalizeFourDigitYear(t *testing.T) {
	stamps, err := Normalize([]Candidate{{RawDate: "1/2/2023", RawTime: "23:59"}})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if stamps[0].Year() != 2023 || stamps[0].Minute() != 59 {
		t.Fatalf("unexpected stamp: %v", stamps[0])
	}
}

func TestNormalizeSeconds(t *testing.T) {
	stamps, err := Normalize([]Candidate{{RawDate: "5/3/23", RawTime: "14:00:31"}})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if stamps[0].Hour() != 14 || stamps[0].Minute() != 0 {
		t.Fatalf("unexpected stamp: %v", stamps[0])
	}
}

func TestNormalizeLowercaseMeridiem(t *testing.T) {
	stamps, err := Normalize([]Candidate{{RawDate: "5/3/23", RawTime: "9:15pm"}})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if stamps[0].Hour() != 21 || stamps[0].Minute() != 15 {
		t.Fatalf("unexpected stamp: %v", stamps[0])
	}
}

func TestNormalizeNarrowNoBreakSpaceMeridiem(t *testing.T) {
	stamps, err := Normalize([]Candidate{{RawDate: "12/5/23", RawTime: "9:15\u202fPM"}})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if stamps[0].Hour() != 21 || stamps[0].Minute() != 15 {
		t.Fatalf("unexpected stamp: %v", stamps[0])
	}
}

func TestNormalizeMixedClocksFailsWholeBatch(t *testing.T) {
	// One 24h entry and one meridiem entry: no single hypothesis covers
	// both, and partial adoption is not allowed.
	_, err := Normalize([]Candidate{
		{RawDate: "5/3/23", RawTime: "14:00"},
		{RawDate: "5/3/23", RawTime: "9:30 PM"},
	})
	if !errors.Is(err, ErrTimestampFormat) {
		t.Fatalf("expected ErrTimestampFormat, got %v", err)
	}
}

func TestNormalizeEmptyBatch(t *testing.T) {
	if _, err := Normalize(nil); !errors.Is(err, ErrTimestampFormat) {
		t.Fatalf("expected ErrTimestampFormat, got %v", err)
	}
}
