package draughts

import "testing"

func TestHashIgnoresMoveOrder(t *testing.T) {
	a := mustGame(t, Standard, "")
	for _, li := range []string{"3126", "2025", "3227"} {
		mustPlay(t, a, li)
	}
	b := mustGame(t, Standard, "")
	for _, li := range []string{"3227", "2025", "3126"} {
		mustPlay(t, b, li)
	}
	if a.BoardString() != b.BoardString() {
		t.Fatalf("transposition reached different boards")
	}
	if a.Board().Hash() != b.Board().Hash() {
		t.Fatalf("hash mismatch: got=%d want=%d", a.Board().Hash(), b.Board().Hash())
	}
}

func TestHashChangesWithSideAndPieces(t *testing.T) {
	start := Standard.StartPosition()
	w, err := ParseBoardString(Standard, start)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bl, err := ParseBoardString(Standard, "B"+start[1:])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w.Hash() == bl.Hash() {
		t.Fatalf("side to move should change the hash")
	}
	if w.Hash() != w.clone().Hash() {
		t.Fatalf("clone should keep the hash")
	}

	g := mustGame(t, Standard, "")
	before := g.Board().Hash()
	mustPlay(t, g, "3126")
	if g.Board().Hash() == before {
		t.Fatalf("hash unchanged after a move")
	}
}

func TestZobristKeysDistinctPerKind(t *testing.T) {
	z := zobristKeys()
	seen := make(map[uint64]bool)
	for sq := 1; sq <= Standard.NumSquares(); sq++ {
		for _, p := range []Player{White, Black} {
			for _, king := range []bool{false, true} {
				k := z.key(Piece{Player: p, King: king, Square: sq})
				if k == 0 || seen[k] {
					t.Fatalf("square %d %s king=%v: bad key %d", sq, p, king, k)
				}
				seen[k] = true
			}
		}
	}
	if z.key(Piece{Player: White, Square: Standard.NumSquares() + 1}) != 0 {
		t.Fatalf("square past the board should have no key")
	}

	man := boardWith(Standard, 'W', map[int]byte{28: 'w', 5: 'b'})
	king := boardWith(Standard, 'W', map[int]byte{28: 'W', 5: 'b'})
	a, _ := ParseBoardString(Standard, man)
	b, _ := ParseBoardString(Standard, king)
	if a.Hash() == b.Hash() {
		t.Fatalf("promotion should change the hash")
	}
}
