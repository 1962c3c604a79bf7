package model

import (
	"strings"
	"time"
)

// DefaultColor is used when a garment is created without an explicit color.
const DefaultColor = "#000000"

// Garment represents one tracked wearable item. Count is the number of wears
// since the last wash; TotalCount is the lifetime wear count.
type Garment struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Count       int        `json:"count"`
	TotalCount  int        `json:"total_count"`
	LastWear    *time.Time `json:"last_wear,omitempty"`
	LastWash    *time.Time `json:"last_wash,omitempty"`
	Color       string     `json:"color"`
	Tags        []string   `json:"tags"`
}

// ParseTags splits a comma-separated tag string into individual tags, trimming
// whitespace from each. Empty segments are kept, so "a,,b" yields three tags.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// JoinTags encodes a tag list into its stored form (comma-joined, no spaces).
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// ParseTimestamp decodes an RFC3339 timestamp from its stored text form.
// A value that fails to parse is treated as absent, not as an error.
func ParseTimestamp(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
