package encoding

import (
	"testing"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
)

// TestMoveToIndexSlide exercises a 3-square queen-like slide: a move
// from (6,6) three squares toward increasing row. Values cross-checked
// against original_source/src/cpp/move.cpp's Move::GetIndex, which takes
// (delta_col, delta_row) — not (delta_row, delta_col) — as the direction
// key.
func TestMoveToIndexSlide(t *testing.T) {
	m := board.Move{
		From: board.NewSquare(6, 6),
		To:   board.NewSquare(9, 6),
	}

	plane, row, col := MoveToIndex(m)
	if plane != 54 || row != 6 || col != 6 {
		t.Fatalf("MoveToIndex = (%d,%d,%d), want (54,6,6)", plane, row, col)
	}

	flat := MoveToFlatIndex(m)
	if flat != 10674 {
		t.Fatalf("MoveToFlatIndex = %d, want 10674", flat)
	}
}

// TestIndexToMoveRoundTrip checks that decoding the index produced by
// MoveToIndex reconstructs the same from/to squares.
func TestIndexToMoveRoundTrip(t *testing.T) {
	original := board.Move{
		From: board.NewSquare(6, 6),
		To:   board.NewSquare(9, 6),
	}
	plane, row, col := MoveToIndex(original)

	decoded, err := IndexToMove(plane, row, col)
	if err != nil {
		t.Fatalf("IndexToMove: %v", err)
	}
	if decoded.From != original.From || decoded.To != original.To {
		t.Fatalf("round trip = %s, want %s", decoded, original)
	}
}

// TestKnightIndexRoundTrip checks a knight-plane encode/decode.
func TestKnightIndexRoundTrip(t *testing.T) {
	original := board.Move{
		From: board.NewSquare(7, 7),
		To:   board.NewSquare(5, 6), // delta_col=-1, delta_row=-2
	}
	plane, row, col := MoveToIndex(original)
	if plane < NumQueenMoves {
		t.Fatalf("expected a knight plane (>= %d), got %d", NumQueenMoves, plane)
	}

	decoded, err := IndexToMove(plane, row, col)
	if err != nil {
		t.Fatalf("IndexToMove: %v", err)
	}
	if decoded.From != original.From || decoded.To != original.To {
		t.Fatalf("round trip = %s, want %s", decoded, original)
	}
}

func TestNumPlanes(t *testing.T) {
	if NumPlanes != 112 {
		t.Fatalf("NumPlanes = %d, want 112", NumPlanes)
	}
}
