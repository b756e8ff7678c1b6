package draughts

import (
	"errors"
	"testing"
)

// 32 绕 27/17/18/28 一圈回到 32，两个方向都吃四个，起终点相同
func roundTripCapture(t *testing.T) *Game {
	t.Helper()
	fen := boardWith(Standard, 'W', map[int]byte{32: 'w', 27: 'b', 28: 'b', 17: 'b', 18: 'b'})
	return mustGame(t, Standard, fen)
}

func TestNotationFormats(t *testing.T) {
	quiet := Move{Steps: []Step{{From: 6, To: 1}}}
	if got := ToLi(quiet); got != "0601" {
		t.Fatalf("li got=%s want=0601", got)
	}
	if got := ToHub(quiet); got != "06-01" {
		t.Fatalf("hub got=%s want=06-01", got)
	}
	chain := Move{
		Steps:    []Step{{From: 32, To: 23}, {From: 23, To: 12}},
		Captured: []int{28, 18},
	}
	steps := LiSteps(chain)
	if len(steps) != 2 || steps[0] != "3223" || steps[1] != "2312" {
		t.Fatalf("li steps got=%v", steps)
	}
	if got := chain.String(); got != "322312" {
		t.Fatalf("string got=%s", got)
	}
}

func TestPDNFallsBackToFullChain(t *testing.T) {
	g := roundTripCapture(t)
	got := liList(g.LegalMoves())
	if len(got) != 2 || got[0] != "3221122332" || got[1] != "3223122132" {
		t.Fatalf("legal moves got=%v", got)
	}
	for _, m := range g.LegalMoves() {
		pdn, err := g.ToPDN(m)
		if err != nil {
			t.Fatalf("pdn: %v", err)
		}
		want := "32x21x12x23x32"
		if m.Steps[0].To == 23 {
			want = "32x23x12x21x32"
		}
		if pdn != want {
			t.Fatalf("pdn got=%s want=%s", pdn, want)
		}
		back, err := g.FromPDN(pdn)
		if err != nil || !back.SameSteps(m) {
			t.Fatalf("from pdn %s: %v", pdn, err)
		}
	}
	if _, err := g.FromPDN("32x32"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("ambiguous pdn: want ErrIllegalMove, got %v", err)
	}
	pdns := g.PDNMoves()
	if len(pdns) != 2 || pdns[0] == pdns[1] {
		t.Fatalf("pdn list got=%v", pdns)
	}
}

func TestNotationRoundTrips(t *testing.T) {
	positions := []*Game{
		mustGame(t, Standard, ""),
		mustGame(t, Standard, boardWith(Standard, 'W', map[int]byte{32: 'w', 27: 'b', 28: 'b', 18: 'b'})),
		mustGame(t, Russian, boardWith(Russian, 'W', map[int]byte{11: 'w', 7: 'b', 6: 'b'})),
		mustGame(t, Frisian, boardWith(Frisian, 'W', map[int]byte{5: 'W', 10: 'b', 41: 'w', 37: 'b'})),
	}
	for _, g := range positions {
		for _, m := range g.LegalMoves() {
			li, err := g.FromLi(toLi(m))
			if err != nil || !li.SameSteps(m) {
				t.Fatalf("%s: li round trip %s: %v", g.Variant(), toLi(m), err)
			}
			hub, err := g.FromHub(toHub(m))
			if err != nil || hub.From() != m.From() || hub.To() != m.To() {
				t.Fatalf("%s: hub round trip %s: %v", g.Variant(), toHub(m), err)
			}
			pdn, err := g.ToPDN(m)
			if err != nil {
				t.Fatalf("%s: pdn %s: %v", g.Variant(), toLi(m), err)
			}
			back, err := g.FromPDN(pdn)
			if err != nil || !back.SameSteps(m) {
				t.Fatalf("%s: pdn round trip %s: %v", g.Variant(), pdn, err)
			}
		}
	}
}

func TestFromHubIgnoresCaptureOrder(t *testing.T) {
	g := mustGame(t, Standard, boardWith(Standard, 'W', map[int]byte{32: 'w', 27: 'b', 28: 'b', 18: 'b'}))
	m, err := g.FromHub("32x12x28x18")
	if err != nil {
		t.Fatalf("from hub: %v", err)
	}
	if toLi(m) != "322312" {
		t.Fatalf("from hub got=%s", toLi(m))
	}
	if _, err := g.FromHub("32x12x18"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("missing capture: want ErrIllegalMove, got %v", err)
	}
}

func TestNotationErrors(t *testing.T) {
	g := mustGame(t, Standard, "")
	malformed := []string{"3223a", "3299", "", "31"}
	for _, s := range malformed {
		if _, err := g.FromLi(s); !errors.Is(err, ErrMalformedNotation) {
			t.Fatalf("li %q: want ErrMalformedNotation, got %v", s, err)
		}
	}
	if _, err := g.FromHub("31-2b"); !errors.Is(err, ErrMalformedNotation) {
		t.Fatalf("hub: want ErrMalformedNotation, got %v", err)
	}
	if _, err := g.FromLi("3130"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("li 3130: want ErrIllegalMove, got %v", err)
	}
	if _, err := g.FromPDN("31-22"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("pdn 31-22: want ErrIllegalMove, got %v", err)
	}
	if _, err := g.ParseMove("sgf", "3126"); !errors.Is(err, ErrMalformedNotation) {
		t.Fatalf("unknown notation: want ErrMalformedNotation, got %v", err)
	}
	if _, err := g.ToPDN(Move{Steps: []Step{{From: 31, To: 22}}}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("to pdn: want ErrIllegalMove, got %v", err)
	}
	if err := g.PushStep("312"); !errors.Is(err, ErrMalformedNotation) {
		t.Fatalf("push step: want ErrMalformedNotation, got %v", err)
	}
}

func TestParseMoveByName(t *testing.T) {
	g := mustGame(t, Standard, "")
	for notation, s := range map[string]string{"li": "3126", "hub": "31-26", "pdn": "31-26"} {
		m, err := g.ParseMove(notation, s)
		if err != nil {
			t.Fatalf("%s %s: %v", notation, s, err)
		}
		if toLi(m) != "3126" {
			t.Fatalf("%s %s got=%s", notation, s, toLi(m))
		}
	}
}

func TestPDNPadsSquares(t *testing.T) {
	g := mustGame(t, Standard, boardWith(Standard, 'W', map[int]byte{6: 'w', 31: 'w', 45: 'b'}))
	pdns := g.PDNMoves()
	found := false
	for _, s := range pdns {
		if s == "06-01" {
			found = true
		}
		if s == "6-1" {
			t.Fatalf("unpadded pdn in %v", pdns)
		}
	}
	if !found {
		t.Fatalf("pdn list got=%v want 06-01", pdns)
	}
	m, err := g.FromPDN("06-01")
	if err != nil || toLi(m) != "0601" {
		t.Fatalf("from pdn 06-01: got=%s err=%v", toLi(m), err)
	}

	// 22 绕 17/7/8/18 一圈：中途落在底线 02 不升变，起终点相同只能写完整路径
	g = mustGame(t, Standard, boardWith(Standard, 'W', map[int]byte{22: 'w', 17: 'b', 18: 'b', 7: 'b', 8: 'b'}))
	got := liList(g.LegalMoves())
	if len(got) != 2 || got[0] != "2211021322" || got[1] != "2213021122" {
		t.Fatalf("legal moves got=%v", got)
	}
	for _, m := range g.LegalMoves() {
		pdn, err := g.ToPDN(m)
		if err != nil {
			t.Fatalf("pdn: %v", err)
		}
		want := "22x11x02x13x22"
		if m.Steps[0].To == 13 {
			want = "22x13x02x11x22"
		}
		if pdn != want {
			t.Fatalf("pdn got=%s want=%s", pdn, want)
		}
		back, err := g.FromPDN(pdn)
		if err != nil || !back.SameSteps(m) {
			t.Fatalf("from pdn %s: %v", pdn, err)
		}
	}
	if _, err := g.FromPDN("22x22"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("ambiguous pdn: want ErrIllegalMove, got %v", err)
	}
}
