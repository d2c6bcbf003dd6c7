package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/notepad/pkg/adapters/memory"
	"github.com/aretw0/notepad/pkg/core"
	"pgregory.net/rapid"
)

func genNote(t *rapid.T, label string) core.Note {
	return core.Note{
		ID:        rapid.Int64Range(1, 1<<40).Draw(t, label+"-id"),
		Title:     rapid.StringMatching(`[A-Za-z0-9 ]{1,20}`).Draw(t, label+"-title"),
		Content:   rapid.StringMatching(`[A-Za-z0-9 \n]{1,60}`).Draw(t, label+"-content"),
		CreatedAt: time.UnixMilli(rapid.Int64Range(0, 1<<41).Draw(t, label+"-created")).UTC(),
	}
}

func genList(t *rapid.T) core.NoteList {
	n := rapid.IntRange(0, 8).Draw(t, "len")
	var list core.NoteList
	for i := 0; i < n; i++ {
		list = core.Upsert(list, genNote(t, "note"))
	}
	return list
}

func TestProperty_UpsertRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		store := core.NewStore(memory.New(), nil)
		list := core.Upsert(genList(t), genNote(t, "new"))

		if err := store.Replace(ctx, slot, list); err != nil {
			t.Fatalf("replace: %v", err)
		}
		got := store.Load(ctx, slot)

		if len(got) != len(list) {
			t.Fatalf("expected %d notes, got %d", len(list), len(got))
		}
		for i := range list {
			if got[i].ID != list[i].ID || got[i].Title != list[i].Title || got[i].Content != list[i].Content {
				t.Fatalf("note %d changed: %+v != %+v", i, got[i], list[i])
			}
			if !got[i].CreatedAt.Equal(list[i].CreatedAt) || got[i].UpdatedAt != nil {
				t.Fatalf("timestamps changed for note %d", i)
			}
		}
	})
}

func TestProperty_UniqueIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		list := genList(t)
		seen := make(map[int64]bool)
		for _, n := range list {
			if seen[n.ID] {
				t.Fatalf("duplicate id %d", n.ID)
			}
			seen[n.ID] = true
		}
	})
}

func TestProperty_RemoveAbsentIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		list := genList(t)
		id := rapid.Int64Range(1, 1<<40).Draw(t, "id")
		if _, ok := list.Find(id); ok {
			return
		}

		out := core.Remove(list, id)
		if len(out) != len(list) {
			t.Fatalf("remove of absent id changed length %d -> %d", len(list), len(out))
		}
		for i := range list {
			if out[i].ID != list[i].ID {
				t.Fatalf("order changed at %d", i)
			}
		}
	})
}

func TestProperty_IDsIncrease(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ms := rapid.Int64Range(0, 1<<41).Draw(t, "now")
		ids := core.NewIDSource(func() time.Time { return time.UnixMilli(ms) })
		ids.Observe(rapid.Int64Range(0, 1<<41).Draw(t, "seen"))

		prev := ids.Next()
		for i := 0; i < 5; i++ {
			next := ids.Next()
			if next <= prev {
				t.Fatalf("id %d not greater than %d", next, prev)
			}
			prev = next
		}
	})
}
