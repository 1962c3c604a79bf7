package web

import (
	"fmt"
	"strings"
	"time"

	"github.com/g-s-k/wear/internal/model"
)

// GarmentView is the template-facing projection of a garment. Optional
// timestamps are pre-formatted and paired with Has* flags so templates can
// branch without re-deriving optionality.
type GarmentView struct {
	Key         int64
	Name        string
	Description string
	Count       int
	TotalCount  int
	HasWear     bool
	WearFmt     string
	HasWash     bool
	WashFmt     string
	Color       string
	Tags        string
}

// NewGarmentView maps a garment to its view model, formatting relative times
// against now.
func NewGarmentView(g model.Garment, now time.Time) GarmentView {
	v := GarmentView{
		Key:         g.ID,
		Name:        g.Name,
		Description: g.Description,
		Count:       g.Count,
		TotalCount:  g.TotalCount,
		Color:       g.Color,
		Tags:        DisplayTags(g.Tags),
	}

	if g.LastWear != nil {
		v.HasWear = true
		v.WearFmt = FormatSince(now, *g.LastWear)
	}
	if g.LastWash != nil {
		v.HasWash = true
		v.WashFmt = FormatSince(now, *g.LastWash)
	}
	return v
}

// DisplayTags joins tags for display. The display join carries a space,
// unlike the stored encoding.
func DisplayTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// FormatSince renders a timestamp as a rough "how long ago" phrase.
func FormatSince(now, t time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Hour:
		return "right now!"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago.", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago.", int(d.Hours()/24))
	case d < 7*7*24*time.Hour:
		return fmt.Sprintf("%d weeks ago.", int(d.Hours()/24/7))
	default:
		return "a while ago."
	}
}
