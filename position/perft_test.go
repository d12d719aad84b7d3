package position_test

import (
	"testing"

	"chessforge/position"
)

func TestPerft_StartPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p := position.NewStart()
		if got := position.Perft(p, c.depth); got != c.want {
			t.Errorf("perft(start, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerft_Kiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
	}
	for _, c := range cases {
		p, err := position.LoadFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := position.Perft(p, c.depth); got != c.want {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerft_ThirdPosition(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
	}
	for _, c := range cases {
		p, err := position.LoadFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := position.Perft(p, c.depth); got != c.want {
			t.Errorf("perft(pos3, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftDivide_SumsToPerft(t *testing.T) {
	p := position.NewStart()
	div := position.PerftDivide(p, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := position.Perft(p, 3); sum != want {
		t.Fatalf("sum of PerftDivide branches = %d, want %d", sum, want)
	}
	if len(div) != 20 {
		t.Fatalf("expected 20 root branches, got %d", len(div))
	}
}
