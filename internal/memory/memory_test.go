package memory

import (
	"testing"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
)

func TestAppendAndLoadGameRoundTrip(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer store.Close()

	entries := []MemoryEntry{
		{State: []float32{1, 0, 0}, PolicyTarget: []float32{0.5, 0.5}, Color: board.Red},
		{State: []float32{0, 1, 0}, PolicyTarget: []float32{1}, Color: board.Blue},
	}

	if err := store.AppendGame("run-1", entries); err != nil {
		t.Fatalf("AppendGame: %v", err)
	}

	got, err := store.LoadGame("run-1")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("len(LoadGame) = %d, want %d", len(got), len(entries))
	}
	for i, want := range entries {
		if got[i].Color != want.Color {
			t.Fatalf("entry %d color = %s, want %s", i, got[i].Color, want.Color)
		}
		if len(got[i].PolicyTarget) != len(want.PolicyTarget) {
			t.Fatalf("entry %d policy target length mismatch", i)
		}
	}
}

func TestLoadGameUnknownRunIsEmpty(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer store.Close()

	got, err := store.LoadGame("no-such-run")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len(LoadGame) = %d, want 0", len(got))
	}
}

func TestAppendGameKeepsRunsSeparate(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	defer store.Close()

	if err := store.AppendGame("run-a", []MemoryEntry{{Color: board.Red}}); err != nil {
		t.Fatalf("AppendGame run-a: %v", err)
	}
	if err := store.AppendGame("run-b", []MemoryEntry{{Color: board.Green}, {Color: board.Yellow}}); err != nil {
		t.Fatalf("AppendGame run-b: %v", err)
	}

	a, err := store.LoadGame("run-a")
	if err != nil {
		t.Fatalf("LoadGame run-a: %v", err)
	}
	if len(a) != 1 {
		t.Fatalf("run-a length = %d, want 1", len(a))
	}

	b, err := store.LoadGame("run-b")
	if err != nil {
		t.Fatalf("LoadGame run-b: %v", err)
	}
	if len(b) != 2 {
		t.Fatalf("run-b length = %d, want 2", len(b))
	}
}
