// Package pgn reads recorded games from PGN archives and flattens them into
// coordinate moves that can be replayed square by square.
package pgn

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notnil/chess"

	"github.com/discochess/chessrules/internal/codec"
	"github.com/discochess/chessrules/internal/codec/gzipcodec"
	"github.com/discochess/chessrules/internal/codec/noopcodec"
	"github.com/discochess/chessrules/internal/codec/zstdcodec"
)

// ErrNoGames indicates the archive held no parsable games.
var ErrNoGames = errors.New("pgn: no games found")

// Ending is how a recorded game finished on the board.
type Ending int

const (
	// Unfinished covers resignations, time forfeits, draws by agreement and
	// games that are still running.
	Unfinished Ending = iota
	Checkmate
	Stalemate
)

func (e Ending) String() string {
	switch e {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unfinished"
	}
}

// Move is one half-move in coordinate form.
type Move struct {
	From, To string

	// Promo is the promotion piece letter ('q', 'r', 'b', 'n'), or 0.
	Promo byte
}

func (m Move) String() string {
	if m.Promo != 0 {
		return m.From + m.To + string(m.Promo)
	}
	return m.From + m.To
}

// Game is a recorded game.
type Game struct {
	// Index is the 1-based position of the game in its archive.
	Index int

	White, Black, Result string

	Moves []Move

	// Placements holds the piece placement field of every position,
	// starting with the initial one, so len(Placements) == len(Moves)+1.
	Placements []string

	Ending Ending
}

// Underpromotes reports whether the game contains a promotion to anything
// other than a queen.
func (g *Game) Underpromotes() bool {
	for _, m := range g.Moves {
		if m.Promo != 0 && m.Promo != 'q' {
			return true
		}
	}
	return false
}

// CodecFor picks a codec from the file extension of path.
func CodecFor(path string) codec.Codec {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return zstdcodec.New()
	case strings.HasSuffix(path, ".gz"):
		return gzipcodec.New()
	default:
		return noopcodec.New()
	}
}

// Open opens a PGN archive, decompressing it according to its extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PGN: %w", err)
	}
	r, err := CodecFor(path).Reader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	return &archive{ReadCloser: r, file: f}, nil
}

type archive struct {
	io.ReadCloser
	file *os.File
}

func (a *archive) Close() error {
	return errors.Join(a.ReadCloser.Close(), a.file.Close())
}

// Read decodes up to limit games from r. A limit of zero reads every game.
func Read(r io.Reader, limit int) ([]Game, error) {
	scanner := chess.NewScanner(r)

	var games []Game
	for scanner.Scan() {
		g := scanner.Next()
		// The scanner yields an empty game for input without any PGN in it.
		if len(g.Moves()) == 0 && len(g.TagPairs()) == 0 {
			continue
		}
		games = append(games, convert(len(games)+1, g))
		if limit > 0 && len(games) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return games, fmt.Errorf("reading game %d: %w", len(games)+1, err)
	}
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	return games, nil
}

// ReadFile opens path and reads up to limit games from it.
func ReadFile(path string, limit int) ([]Game, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc, limit)
}

func convert(index int, g *chess.Game) Game {
	out := Game{
		Index:  index,
		White:  tag(g, "White"),
		Black:  tag(g, "Black"),
		Result: tag(g, "Result"),
	}

	for _, m := range g.Moves() {
		out.Moves = append(out.Moves, Move{
			From:  m.S1().String(),
			To:    m.S2().String(),
			Promo: promoLetter(m.Promo()),
		})
	}
	for _, pos := range g.Positions() {
		out.Placements = append(out.Placements, placement(pos.String()))
	}

	switch g.Method() {
	case chess.Checkmate:
		out.Ending = Checkmate
	case chess.Stalemate:
		out.Ending = Stalemate
	}
	return out
}

func tag(g *chess.Game, key string) string {
	if tp := g.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return ""
}

func promoLetter(p chess.PieceType) byte {
	switch p {
	case chess.Queen:
		return 'q'
	case chess.Rook:
		return 'r'
	case chess.Bishop:
		return 'b'
	case chess.Knight:
		return 'n'
	default:
		return 0
	}
}

// placement returns the first field of a FEN string.
func placement(fen string) string {
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		return fen[:i]
	}
	return fen
}
