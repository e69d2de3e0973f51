package chessrules

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/notnil/chess"
)

type movePair struct {
	from, to Square
}

func fromNotnil(s chess.Square) Square {
	return Sq(7-int(s.Rank()), int(s.File()))
}

func legalPairs(b *Board, side Color) map[movePair]bool {
	pairs := make(map[movePair]bool)
	for fr := 0; fr < 8; fr++ {
		for fc := 0; fc < 8; fc++ {
			from := Sq(fr, fc)
			if b.At(from).Color != side {
				continue
			}
			for tr := 0; tr < 8; tr++ {
				for tc := 0; tc < 8; tc++ {
					if b.IsLegal(from, Sq(tr, tc)) {
						pairs[movePair{from, Sq(tr, tc)}] = true
					}
				}
			}
		}
	}
	return pairs
}

func notnilPairs(g *chess.Game) map[movePair]bool {
	pairs := make(map[movePair]bool)
	for _, m := range g.ValidMoves() {
		pairs[movePair{fromNotnil(m.S1()), fromNotnil(m.S2())}] = true
	}
	return pairs
}

func diffPairs(a, b map[movePair]bool) []string {
	var out []string
	for p := range a {
		if !b[p] {
			out = append(out, p.from.String()+p.to.String())
		}
	}
	sort.Strings(out)
	return out
}

// TestDifferential_RandomGames plays seeded random games through both this
// engine and github.com/notnil/chess and compares the legal move sets and
// game-ending status after every ply. Under-promotions are never chosen.
func TestDifferential_RandomGames(t *testing.T) {
	games, maxPlies := 24, 160
	if testing.Short() {
		games, maxPlies = 4, 60
	}

	for seed := int64(1); seed <= int64(games); seed++ {
		rng := rand.New(rand.NewSource(seed))
		ref := chess.NewGame()
		b := NewStandardBoard()
		side := Light

		for ply := 0; ply < maxPlies && ref.Outcome() == chess.NoOutcome; ply++ {
			want := notnilPairs(ref)
			got := legalPairs(b, side)
			if missing, extra := diffPairs(want, got), diffPairs(got, want); len(missing) > 0 || len(extra) > 0 {
				t.Fatalf("seed %d ply %d (%s): missing %v, extra %v", seed, ply, b.FEN(side), missing, extra)
			}

			var candidates []*chess.Move
			for _, m := range ref.ValidMoves() {
				if p := m.Promo(); p == chess.NoPieceType || p == chess.Queen {
					candidates = append(candidates, m)
				}
			}
			m := candidates[rng.Intn(len(candidates))]
			if err := ref.Move(m); err != nil {
				t.Fatalf("seed %d ply %d: reference rejected %s: %v", seed, ply, m, err)
			}
			from, to := fromNotnil(m.S1()), fromNotnil(m.S2())
			if !b.MovePiece(from, to) {
				t.Fatalf("seed %d ply %d: MovePiece(%s, %s) = false on %s", seed, ply, from, to, b.FEN(side))
			}
			side = side.Opponent()

			wantStatus := StatusNormal
			switch ref.Method() {
			case chess.Checkmate:
				wantStatus = StatusCheckmate
			case chess.Stalemate:
				wantStatus = StatusStalemate
			default:
				if m.HasTag(chess.Check) {
					wantStatus = StatusCheck
				}
			}
			if got := b.Status(side); got != wantStatus {
				t.Fatalf("seed %d ply %d after %s: Status(%s) = %s, want %s", seed, ply, m, side, got, wantStatus)
			}
		}
	}
}

func TestDifferential_Positions(t *testing.T) {
	tests := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			opt, err := chess.FEN(s)
			if err != nil {
				t.Fatalf("chess.FEN() error = %v", err)
			}
			ref := chess.NewGame(opt)
			b, side, err := FromFEN(s)
			if err != nil {
				t.Fatalf("FromFEN() error = %v", err)
			}

			want, got := notnilPairs(ref), legalPairs(b, side)
			if missing, extra := diffPairs(want, got), diffPairs(got, want); len(missing) > 0 || len(extra) > 0 {
				t.Errorf("missing %v, extra %v", missing, extra)
			}
		})
	}
}
