package subdiv2d

import "testing"

func TestRotateIsSelfInverseAfterFourTurns(t *testing.T) {
	e := edgeID(7, 1)
	got := rotate(rotate(e, 3), 1)
	if got != e {
		t.Fatalf("rotate(rotate(e,3),1) = %v, want %v", got, e)
	}
}

func TestRotateNegativeOffset(t *testing.T) {
	e := edgeID(5, 2)
	for k := -6; k <= 6; k++ {
		got := rotate(e, k)
		wantRot := ((2+k)%4 + 4) % 4
		if rot(got) != wantRot || qe(got) != qe(e) {
			t.Fatalf("rotate(e,%d) = %v, want rotation %d on the same quad-edge", k, got, wantRot)
		}
	}
}

func TestSymIsInvolution(t *testing.T) {
	e := edgeID(3, 0)
	if sym(sym(e)) != e {
		t.Fatalf("sym(sym(e)) != e")
	}
}

func TestQeAndRotRoundtrip(t *testing.T) {
	e := edgeID(42, 3)
	if qe(e) != 42 || rot(e) != 3 {
		t.Fatalf("qe/rot roundtrip failed: qe=%d rot=%d", qe(e), rot(e))
	}
}

func TestOnextSelfLoopAfterMakeEdge(t *testing.T) {
	s := New()
	if err := s.Init(Rect{X: 0, Y: 0, Width: 10, Height: 10}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e := s.makeEdge()
	if s.onext(e) != e {
		t.Fatalf("fresh edge's onext should be itself, got %v", s.onext(e))
	}
	d := rotate(e, 1)
	if s.onext(d) != d {
		t.Fatalf("fresh dual edge's onext should be itself, got %v", s.onext(d))
	}
}

func TestGetEdgeNavigationMatchesDerivedCompositions(t *testing.T) {
	s := New()
	if err := s.Init(Rect{X: 0, Y: 0, Width: 10, Height: 10}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	e := s.recentEdge

	cases := []struct {
		name string
		nav  int
		want EdgeId
	}{
		{"NextAroundOrg", NextAroundOrg, s.onext(e)},
		{"NextAroundDst", NextAroundDst, s.dnext(e)},
		{"PrevAroundOrg", PrevAroundOrg, s.oprev(e)},
		{"PrevAroundDst", PrevAroundDst, s.dprev(e)},
		{"NextAroundLeft", NextAroundLeft, s.lnext(e)},
		{"NextAroundRight", NextAroundRight, s.rnext(e)},
		{"PrevAroundLeft", PrevAroundLeft, s.lprev(e)},
		{"PrevAroundRight", PrevAroundRight, s.rprev(e)},
	}
	for _, c := range cases {
		if got := s.GetEdge(e, c.nav); got != c.want {
			t.Errorf("%s: GetEdge = %v, want %v", c.name, got, c.want)
		}
	}
}
