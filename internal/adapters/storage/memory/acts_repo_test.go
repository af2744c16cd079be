package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-activity-log/internal/domain/acts"
)

func TestActRepo_ListOrderAndTies(t *testing.T) {
	r := NewActRepo()
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	first, _ := r.Create(ctx, acts.Act{Time: base, Type: acts.TypePee, Text: "Pee"})
	second, _ := r.Create(ctx, acts.Act{Time: base, Type: acts.TypePoo, Text: "Poop"})
	newest, _ := r.Create(ctx, acts.Act{Time: base.Add(time.Minute), Type: acts.TypeFood, Text: "Food"})

	items, err := r.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []int64{newest.ID, second.ID, first.ID}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, items[i].ID)
		}
	}

	items, _ = r.List(ctx, 2)
	if len(items) != 2 {
		t.Fatalf("expected limit 2, got %d", len(items))
	}
}

func TestActRepo_MissingIDs(t *testing.T) {
	r := NewActRepo()
	ctx := context.Background()

	if _, err := r.GetByID(ctx, 7); !errors.Is(err, acts.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := r.Update(ctx, acts.Act{ID: 7, Type: acts.TypePee, Text: "Pee"}); !errors.Is(err, acts.ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if _, err := r.Delete(ctx, 7); !errors.Is(err, acts.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}
