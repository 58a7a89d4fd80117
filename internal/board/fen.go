package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the canonical starting position, verbatim from spec §6.
const StartFEN = "R-0,0,0,0-1,1,1,1-1,1,1,1-0,0,0,0-0-" +
	"x,x,x,yR,yN,yB,yK,yQ,yB,yN,yR,x,x,x/" +
	"x,x,x,yP,yP,yP,yP,yP,yP,yP,yP,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"bR,bP,10,gP,gR/" +
	"bN,bP,10,gP,gN/" +
	"bB,bP,10,gP,gB/" +
	"bQ,bP,10,gP,gK/" +
	"bK,bP,10,gP,gQ/" +
	"bB,bP,10,gP,gB/" +
	"bN,bP,10,gP,gN/" +
	"bR,bP,10,gP,gR/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,rP,rP,rP,rP,rP,rP,rP,rP,x,x,x/" +
	"x,x,x,rR,rN,rB,rQ,rK,rB,rN,rR,x,x,x"

var colorLetters = map[byte]Color{
	'r': Red,
	'b': Blue,
	'y': Yellow,
	'g': Green,
}

var kindLetters = map[byte]Kind{
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
	'K': King,
}

var turnLetters = map[byte]Color{
	'R': Red,
	'B': Blue,
	'Y': Yellow,
	'G': Green,
}

// ParseFEN parses the comma/slash-delimited 14x14 layout described in
// spec §6. The seven dash-separated fields are:
//
//	0: turn, a single color letter (R/B/Y/G)
//	1: per-player (R,B,Y,G order) "eliminated" flags, 0/1 — not modeled
//	   beyond king-capture detection; accepted and ignored
//	2: per-player kingside castling rights, 0/1
//	3: per-player queenside castling rights, 0/1
//	4: per-player "in check" flags, 0/1 — derivable, accepted and ignored
//	5: a trailing counter (half-move clock equivalent) — accepted and
//	   ignored, this engine has no fifty-move rule
//	6: the board layout, 14 '/'-separated rows of ','-separated tokens,
//	   each either "x" (cut-out), a decimal run-length of empty playable
//	   squares, or a two-character color+kind piece token
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Split(fen, "-")
	if len(fields) != 7 {
		return nil, fmt.Errorf("%w: expected 7 dash-separated fields, got %d", ErrMalformedFEN, len(fields))
	}

	turnField := fields[0]
	if len(turnField) != 1 {
		return nil, fmt.Errorf("%w: bad turn field %q", ErrMalformedFEN, turnField)
	}
	turn, ok := turnLetters[turnField[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown turn letter %q", ErrMalformedFEN, turnField)
	}

	kingsideFlags, err := parseBoolQuad(fields[2])
	if err != nil {
		return nil, err
	}
	queensideFlags, err := parseBoolQuad(fields[3])
	if err != nil {
		return nil, err
	}

	b := New()
	b.turn = turn
	order := [4]Color{Red, Blue, Yellow, Green}
	for i, c := range order {
		b.castling[c] = CastlingRights{
			Present:   true,
			Kingside:  kingsideFlags[i],
			Queenside: queensideFlags[i],
		}
	}

	rows := strings.Split(fields[6], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedFEN, Size, len(rows))
	}

	for row, rowStr := range rows {
		col := 0
		for _, token := range strings.Split(rowStr, ",") {
			if token == "" {
				return nil, fmt.Errorf("%w: empty token in row %d", ErrMalformedFEN, row)
			}
			if token == "x" {
				if col >= Size {
					return nil, fmt.Errorf("%w: row %d overflows columns", ErrMalformedFEN, row)
				}
				col++
				continue
			}
			if n, err := strconv.Atoi(token); err == nil {
				col += n
				continue
			}
			if len(token) != 2 {
				return nil, fmt.Errorf("%w: bad piece token %q", ErrMalformedFEN, token)
			}
			c, ok := colorLetters[token[0]]
			if !ok {
				return nil, fmt.Errorf("%w: unknown color letter in %q", ErrMalformedFEN, token)
			}
			k, ok := kindLetters[token[1]]
			if !ok {
				return nil, fmt.Errorf("%w: unknown kind letter in %q", ErrMalformedFEN, token)
			}
			if col >= Size {
				return nil, fmt.Errorf("%w: row %d overflows columns", ErrMalformedFEN, row)
			}
			b.addPiece(NewSquare(row, col), NewPiece(c, k))
			col++
		}
		if col != Size {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedFEN, row, col, Size)
		}
	}

	return b, nil
}

func parseBoolQuad(field string) ([4]bool, error) {
	var out [4]bool
	parts := strings.Split(field, ",")
	if len(parts) != 4 {
		return out, fmt.Errorf("%w: expected 4 comma-separated flags, got %d", ErrMalformedFEN, len(parts))
	}
	for i, p := range parts {
		switch p {
		case "0":
			out[i] = false
		case "1":
			out[i] = true
		default:
			return out, fmt.Errorf("%w: bad flag %q", ErrMalformedFEN, p)
		}
	}
	return out, nil
}
