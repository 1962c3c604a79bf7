package store

import (
	"context"
	"testing"
	"time"

	"github.com/g-s-k/wear/internal/db"
	"github.com/g-s-k/wear/internal/model"
)

func TestCreateAndGetGarment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, err := CreateGarment(ctx, database, &model.Garment{
		Name:        "Blue Shirt",
		Description: "Everyday wear",
		Color:       "#0000ff",
		Tags:        []string{"casual", "cotton"},
	})
	if err != nil {
		t.Fatalf("CreateGarment: %v", err)
	}

	g, err := GetGarment(ctx, database, id)
	if err != nil {
		t.Fatalf("GetGarment: %v", err)
	}
	if g == nil {
		t.Fatal("expected garment, got nil")
	}
	if g.Name != "Blue Shirt" {
		t.Errorf("expected name 'Blue Shirt', got %q", g.Name)
	}
	if g.Count != 0 || g.TotalCount != 0 {
		t.Errorf("expected zero counters, got count=%d total=%d", g.Count, g.TotalCount)
	}
	if g.LastWear != nil || g.LastWash != nil {
		t.Error("expected no wear/wash timestamps on a new garment")
	}
	if len(g.Tags) != 2 || g.Tags[0] != "casual" || g.Tags[1] != "cotton" {
		t.Errorf("expected tags [casual cotton], got %v", g.Tags)
	}
}

func TestGetMissingGarment(t *testing.T) {
	database := db.NewTestDB(t)

	g, err := GetGarment(context.Background(), database, 42)
	if err != nil {
		t.Fatalf("GetGarment: %v", err)
	}
	if g != nil {
		t.Errorf("expected nil for missing garment, got %+v", g)
	}
}

func TestUpdateGarment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := CreateGarment(ctx, database, &model.Garment{Name: "Old", Color: model.DefaultColor, Tags: []string{""}})
	LogWear(ctx, database, id)

	affected, err := UpdateGarment(ctx, database, &model.Garment{
		ID:    id,
		Name:  "New",
		Color: "#ff0000",
		Tags:  []string{"updated"},
	})
	if err != nil {
		t.Fatalf("UpdateGarment: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}

	g, _ := GetGarment(ctx, database, id)
	if g.Name != "New" || g.Color != "#ff0000" {
		t.Errorf("update not applied: %+v", g)
	}

	// Counters and timestamps are never touched by an update.
	if g.Count != 1 || g.TotalCount != 1 || g.LastWear == nil {
		t.Errorf("update modified counters: %+v", g)
	}
}

func TestUpdateMissingGarment(t *testing.T) {
	database := db.NewTestDB(t)

	affected, err := UpdateGarment(context.Background(), database, &model.Garment{ID: 99, Name: "Ghost"})
	if err != nil {
		t.Fatalf("UpdateGarment: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 affected rows, got %d", affected)
	}
}

func TestDeleteGarment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := CreateGarment(ctx, database, &model.Garment{Name: "Doomed"})

	affected, err := DeleteGarment(ctx, database, id)
	if err != nil {
		t.Fatalf("DeleteGarment: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}

	if g, _ := GetGarment(ctx, database, id); g != nil {
		t.Error("expected garment to be gone")
	}

	affected, err = DeleteGarment(ctx, database, id)
	if err != nil {
		t.Fatalf("DeleteGarment (second): %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 affected rows on repeat delete, got %d", affected)
	}
}

func TestLogWearAndWash(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := CreateGarment(ctx, database, &model.Garment{Name: "Socks"})

	before := time.Now().UTC().Truncate(time.Second)
	if _, err := LogWear(ctx, database, id); err != nil {
		t.Fatalf("LogWear: %v", err)
	}
	if _, err := LogWear(ctx, database, id); err != nil {
		t.Fatalf("LogWear: %v", err)
	}

	g, _ := GetGarment(ctx, database, id)
	if g.Count != 2 || g.TotalCount != 2 {
		t.Errorf("expected count=2 total=2, got count=%d total=%d", g.Count, g.TotalCount)
	}
	if g.LastWear == nil {
		t.Fatal("expected wear timestamp")
	}
	if g.LastWear.Before(before) {
		t.Errorf("wear timestamp %v is before the call at %v", g.LastWear, before)
	}
	if g.LastWash != nil {
		t.Error("wash timestamp should be untouched by wear")
	}

	if _, err := LogWash(ctx, database, id); err != nil {
		t.Fatalf("LogWash: %v", err)
	}

	g, _ = GetGarment(ctx, database, id)
	if g.Count != 0 {
		t.Errorf("expected count reset to 0, got %d", g.Count)
	}
	if g.TotalCount != 2 {
		t.Errorf("wash must not change the lifetime count, got %d", g.TotalCount)
	}
	if g.LastWash == nil {
		t.Error("expected wash timestamp")
	}
}

func TestLogWearMissingGarment(t *testing.T) {
	database := db.NewTestDB(t)

	affected, err := LogWear(context.Background(), database, 123)
	if err != nil {
		t.Fatalf("LogWear: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 affected rows, got %d", affected)
	}
}

func TestListGarmentsSorting(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	names := []string{"banana", "apple", "cherry"}
	for _, n := range names {
		if _, err := CreateGarment(ctx, database, &model.Garment{Name: n}); err != nil {
			t.Fatalf("CreateGarment(%q): %v", n, err)
		}
	}

	// Distinct wear/count values, set directly to avoid identical timestamps.
	fixtures := []struct {
		name  string
		count int
		wear  string
	}{
		{"banana", 5, "2024-01-03T00:00:00Z"},
		{"apple", 1, "2024-01-01T00:00:00Z"},
		{"cherry", 3, "2024-01-02T00:00:00Z"},
	}
	for _, f := range fixtures {
		if _, err := database.Exec(`UPDATE garments SET count = ?, wear = ? WHERE name = ?`,
			f.count, f.wear, f.name); err != nil {
			t.Fatal(err)
		}
	}

	listNames := func(order SortColumn, ascending bool) []string {
		t.Helper()
		garments, err := ListGarments(ctx, database, order, ascending)
		if err != nil {
			t.Fatalf("ListGarments(%q, %v): %v", order, ascending, err)
		}
		out := make([]string, len(garments))
		for i, g := range garments {
			out[i] = g.Name
		}
		return out
	}

	equal := func(got, want []string) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}

	// No order: natural (insertion) order.
	if got := listNames("", true); !equal(got, []string{"banana", "apple", "cherry"}) {
		t.Errorf("natural order: got %v", got)
	}

	if got := listNames(SortName, true); !equal(got, []string{"apple", "banana", "cherry"}) {
		t.Errorf("name asc: got %v", got)
	}
	if got := listNames(SortName, false); !equal(got, []string{"cherry", "banana", "apple"}) {
		t.Errorf("name desc: got %v", got)
	}

	if got := listNames(SortCount, true); !equal(got, []string{"apple", "cherry", "banana"}) {
		t.Errorf("count asc: got %v", got)
	}

	// Timestamp columns invert the direction: ascending reads most-recent-first.
	if got := listNames(SortWear, true); !equal(got, []string{"banana", "cherry", "apple"}) {
		t.Errorf("wear asc (most recent first): got %v", got)
	}
	if got := listNames(SortWear, false); !equal(got, []string{"apple", "cherry", "banana"}) {
		t.Errorf("wear desc (oldest first): got %v", got)
	}
}
