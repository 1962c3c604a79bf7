package web

import (
	"testing"
	"time"

	"github.com/g-s-k/wear/internal/model"
)

func TestFormatSince(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{5 * time.Minute, "right now!"},
		{59 * time.Minute, "right now!"},
		{3 * time.Hour, "3 hours ago."},
		{23 * time.Hour, "23 hours ago."},
		{48 * time.Hour, "2 days ago."},
		{6 * 24 * time.Hour, "6 days ago."},
		{3 * 7 * 24 * time.Hour, "3 weeks ago."},
		{48 * 24 * time.Hour, "6 weeks ago."},
		{100 * 24 * time.Hour, "a while ago."},
	}

	for _, tt := range tests {
		if got := FormatSince(now, now.Add(-tt.ago)); got != tt.want {
			t.Errorf("FormatSince(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestNewGarmentView(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	wear := now.Add(-2 * time.Hour)

	g := model.Garment{
		ID:       7,
		Name:     "Blue Shirt",
		Count:    2,
		Color:    "#0000ff",
		Tags:     []string{"casual", "cotton"},
		LastWear: &wear,
	}

	v := NewGarmentView(g, now)
	if v.Key != 7 {
		t.Errorf("expected key 7, got %d", v.Key)
	}
	if v.Tags != "casual, cotton" {
		t.Errorf("expected display tags 'casual, cotton', got %q", v.Tags)
	}
	if !v.HasWear || v.WearFmt != "2 hours ago." {
		t.Errorf("expected wear '2 hours ago.', got has=%v fmt=%q", v.HasWear, v.WearFmt)
	}
	if v.HasWash || v.WashFmt != "" {
		t.Errorf("expected no wash info, got has=%v fmt=%q", v.HasWash, v.WashFmt)
	}
}
