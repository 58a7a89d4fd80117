package tensor

import (
	"testing"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
	"github.com/jorr3/Alphazero-4-player-chess/internal/encoding"
)

// TestEncodeStateShapeAndChannelZero checks that EncodeState produces a
// buffer of the advertised size and places some of the mover's own pieces
// on channels 0-5 (its relative seat is always 0).
func TestEncodeStateShapeAndChannelZero(t *testing.T) {
	b := board.NewStartingBoard()
	flat := EncodeState(b)

	if got, want := len(flat), Channels*Size*Size; got != want {
		t.Fatalf("len(EncodeState) = %d, want %d", got, want)
	}

	count := 0
	for p := 0; p < 6; p++ {
		for i := 0; i < Size*Size; i++ {
			count += int(flat[p*Size*Size+i])
		}
	}
	if count == 0 {
		t.Fatalf("expected some of the mover's own pieces in channels 0-5")
	}
}

// TestEncodeStateRotatesWithMover checks that encoding the four-fold
// symmetric starting position from RED's and BLUE's perspectives yields
// identical tensors: the channel relabeling plus the spatial rotation put
// each mover's own army at the bottom on channels 0-5. Without the
// rotation, BLUE's army would sit on the left edge and the two would
// differ.
func TestEncodeStateRotatesWithMover(t *testing.T) {
	red := board.NewStartingBoard()
	blue := board.NewStartingBoard()
	blue.SetTurn(board.Blue)

	flatRed := EncodeState(red)
	flatBlue := EncodeState(blue)

	same := true
	for i := range flatRed {
		if flatRed[i] != flatBlue[i] {
			same = false
			break
		}
	}
	if !same {
		t.Fatalf("expected RED's and BLUE's perspective encodings of the symmetric start to be identical")
	}
}

// TestLegalMoveMaskMatchesLegalMoveCount checks that the number of set
// cells in the mask equals the number of legal moves (each legal move
// claims exactly one (plane,row,col) cell).
func TestLegalMoveMaskMatchesLegalMoveCount(t *testing.T) {
	b := board.NewStartingBoard()

	var moves board.MoveList
	want := b.LegalMoves(&moves)

	mask := LegalMoveMask(b)
	if got, want := len(mask), Planes*Size*Size; got != want {
		t.Fatalf("len(LegalMoveMask) = %d, want %d", got, want)
	}

	got := 0
	for _, v := range mask {
		if v != 0 {
			got++
		}
	}
	if got != want {
		t.Fatalf("set mask cells = %d, want %d (one per legal move)", got, want)
	}
}

// TestParseActionSpaceInvertsEncoding checks that rotating a board's own
// mask forward and then back through ParseActionSpace recovers the
// original, unrotated board-coordinate mask.
func TestParseActionSpaceInvertsEncoding(t *testing.T) {
	b := board.NewStartingBoard()
	b.SetTurn(board.Yellow)

	mover := b.Turn()
	forward := rotatePlanes(unrotatedMask(b), Planes, int(mover))

	back := ParseActionSpace(forward, []board.Color{mover})
	want := unrotatedMask(b)

	if len(back) != 1 {
		t.Fatalf("ParseActionSpace returned %d boards, want 1", len(back))
	}
	for i := range want {
		if back[0][i] != want[i] {
			t.Fatalf("ParseActionSpace did not invert the forward rotation at index %d", i)
		}
	}
}

// unrotatedMask builds a [Planes,Size,Size] mask straight from b's legal
// moves, in true board coordinates (no perspective rotation applied).
func unrotatedMask(b *board.Board) []float32 {
	flat := make([]float32, Planes*Size*Size)
	var moves board.MoveList
	b.LegalMoves(&moves)
	for i := 0; i < moves.Len(); i++ {
		plane, row, col := encoding.MoveToIndex(moves.Get(i))
		flat[plane*Size*Size+row*Size+col] = 1
	}
	return flat
}
