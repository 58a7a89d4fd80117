package board

// CastlingRights is a per-player pair of booleans. Present is false when a
// Move's embedded CastlingRights is a "no change" marker rather than an
// actual rights value — it lets Move carry both the before and after
// rights inline (spec data model) without needing a separate changed-flag.
type CastlingRights struct {
	Present    bool
	Kingside   bool
	Queenside  bool
}

// NoChange is the CastlingRights value meaning "this move does not alter
// castling rights for this color".
var NoChange = CastlingRights{}

// AllRights grants both castling sides.
func AllRights() CastlingRights {
	return CastlingRights{Present: true, Kingside: true, Queenside: true}
}

// NoRights revokes both castling sides (still Present, unlike NoChange).
func NoRights() CastlingRights {
	return CastlingRights{Present: true}
}

// rookStartSquares gives the initial kingside/queenside rook squares per
// color, used both to generate castling moves and to detect when a rook
// move should clear a castling right.
var rookStartSquares = [4]struct{ Kingside, Queenside Square }{
	Red:    {Kingside: NewSquare(13, 10), Queenside: NewSquare(13, 3)},
	Blue:   {Kingside: NewSquare(10, 0), Queenside: NewSquare(3, 0)},
	Yellow: {Kingside: NewSquare(0, 3), Queenside: NewSquare(0, 10)},
	Green:  {Kingside: NewSquare(3, 13), Queenside: NewSquare(10, 13)},
}
