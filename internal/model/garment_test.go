package model

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"casual, cotton", []string{"casual", "cotton"}},
		{"one", []string{"one"}},
		{"  spaced  ,tight", []string{"spaced", "tight"}},
		// Empty segments are preserved, matching the stored encoding.
		{"a,,b", []string{"a", "", "b"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		got := ParseTags(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	tags := []string{"casual", "cotton", "summer"}
	if got := ParseTags(JoinTags(tags)); !reflect.DeepEqual(got, tags) {
		t.Errorf("round trip = %v, want %v", got, tags)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts := ParseTimestamp("2024-06-01T12:30:00Z")
	if ts == nil {
		t.Fatal("expected timestamp, got nil")
	}
	want := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("expected %v, got %v", want, ts)
	}

	// Offsets are normalized to UTC.
	ts = ParseTimestamp("2024-06-01T14:30:00+02:00")
	if ts == nil || !ts.Equal(want) {
		t.Errorf("expected %v, got %v", want, ts)
	}

	if ts := ParseTimestamp("not a timestamp"); ts != nil {
		t.Errorf("expected nil for unparseable value, got %v", ts)
	}
	if ts := ParseTimestamp(""); ts != nil {
		t.Errorf("expected nil for empty value, got %v", ts)
	}
}
