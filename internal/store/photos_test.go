package store

import (
	"context"
	"testing"

	"github.com/g-s-k/wear/internal/db"
	"github.com/g-s-k/wear/internal/model"
)

func TestGarmentPhotoRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := CreateGarment(ctx, database, &model.Garment{Name: "Jacket"})

	data, mime, err := GetGarmentPhoto(ctx, database, id)
	if err != nil {
		t.Fatalf("GetGarmentPhoto: %v", err)
	}
	if data != nil || mime != "" {
		t.Errorf("expected no photo on a new garment, got %d bytes / %q", len(data), mime)
	}

	if err := SetGarmentPhoto(ctx, database, id, []byte("fake jpeg bytes"), "image/jpeg"); err != nil {
		t.Fatalf("SetGarmentPhoto: %v", err)
	}

	data, mime, err = GetGarmentPhoto(ctx, database, id)
	if err != nil {
		t.Fatalf("GetGarmentPhoto: %v", err)
	}
	if string(data) != "fake jpeg bytes" {
		t.Errorf("expected photo data back, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}

func TestGarmentPhotoMissingGarment(t *testing.T) {
	database := db.NewTestDB(t)

	data, mime, err := GetGarmentPhoto(context.Background(), database, 7)
	if err != nil {
		t.Fatalf("GetGarmentPhoto: %v", err)
	}
	if data != nil || mime != "" {
		t.Error("expected empty result for missing garment")
	}
}
