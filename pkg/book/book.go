// Package book deals openings to tournament games in a reproducible order, from PGN or
// EPD sources.
package book

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/chessbench/tourneycore/pkg/board"
	"github.com/chessbench/tourneycore/pkg/board/fen"
	"github.com/seekerror/logw"
)

// Format identifies the opening file format.
type Format string

const (
	PGN Format = "pgn"
	EPD Format = "epd"
)

// Order determines how openings are dealt across rounds.
type Order string

const (
	Sequential Order = "sequential"
	Random     Order = "random"
)

// Opening is a starting position plus the moves leading to it, ready to hand to an engine
// as "position fen ... moves ...".
type Opening struct {
	FEN   string   // position before Moves; empty means the standard start position
	Moves []string // UCI moves applied from FEN
	STM   board.Color
}

func (o Opening) String() string {
	f := o.FEN
	if f == "" {
		f = "startpos"
	}
	return fmt.Sprintf("%v moves %v", f, strings.Join(o.Moves, " "))
}

// Options configures an opening book.
type Options struct {
	File   string
	Format Format
	Order  Order
	Plies  int // truncate PGN openings to this many plies; 0 = no limit
	Start  int // 1-based index of the first opening to use
	Seed   int64
}

// Book is an immutable sequence of openings with a selectable deal order. Safe for
// concurrent use.
type Book struct {
	openings []Opening
	perm     []int
}

// New loads an opening book per the options. Without a file, the book contains only the
// standard start position.
func New(ctx context.Context, opts Options) (*Book, error) {
	var openings []Opening
	if opts.File == "" {
		openings = []Opening{{STM: board.White}}
	} else {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("book: read %v: %w", opts.File, err)
		}

		switch opts.Format {
		case EPD:
			openings, err = parseEPD(string(data))
		case PGN, "":
			openings, err = parsePGN(string(data), opts.Plies)
		default:
			return nil, fmt.Errorf("book: unknown format %q", opts.Format)
		}
		if err != nil {
			return nil, fmt.Errorf("book: parse %v: %w", opts.File, err)
		}
		if len(openings) == 0 {
			return nil, fmt.Errorf("book: no openings in %v", opts.File)
		}
	}

	if opts.Start > 1 {
		skip := (opts.Start - 1) % len(openings)
		openings = append(openings[skip:], openings[:skip]...)
	}

	perm := make([]int, len(openings))
	for i := range perm {
		perm[i] = i
	}
	if opts.Order == Random {
		perm = rand.New(rand.NewSource(opts.Seed)).Perm(len(openings))
	}

	logw.Infof(ctx, "Opening book: %v openings (%v, %v)", len(openings), opts.Format, opts.Order)
	return &Book{openings: openings, perm: perm}, nil
}

// Fetch returns the opening for the given round. Rounds beyond the book size wrap around,
// so the book is logically an infinite sequence.
func (b *Book) Fetch(round int) Opening {
	return b.openings[b.perm[round%len(b.perm)]]
}

// Size returns the number of distinct openings.
func (b *Book) Size() int {
	return len(b.openings)
}

// parseEPD reads one position per line. Only the four FEN fields are used; any trailing
// operations such as "bm" or "id" are ignored.
func parseEPD(data string) ([]Opening, error) {
	var ret []Opening
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("short epd line: %q", line)
		}
		str := strings.Join(fields[:4], " ") + " 0 1"

		_, turn, _, _, err := fen.Decode(str)
		if err != nil {
			return nil, fmt.Errorf("invalid epd line %q: %v", line, err)
		}
		ret = append(ret, Opening{FEN: str, STM: turn})
	}
	return ret, nil
}

// parsePGN reads a multi-game PGN file, converting each game's movetext into UCI moves by
// replay. Comments, variations and annotations are skipped.
func parsePGN(data string, plies int) ([]Opening, error) {
	var ret []Opening

	for _, game := range splitPGNGames(data) {
		start := fen.Initial
		if f, ok := game.tags["FEN"]; ok {
			start = f
		}

		pos, turn, _, _, err := fen.Decode(start)
		if err != nil {
			return nil, fmt.Errorf("invalid FEN tag %q: %v", start, err)
		}

		opening := Opening{STM: turn}
		if start != fen.Initial {
			opening.FEN = start
		}

		for _, token := range game.movetext {
			if plies > 0 && len(opening.Moves) >= plies {
				break
			}

			m, err := board.ParseSAN(pos, turn, token)
			if err != nil {
				return nil, fmt.Errorf("invalid move %q: %v", token, err)
			}
			next, ok := pos.Move(m)
			if !ok {
				return nil, fmt.Errorf("illegal move %q", token)
			}
			opening.Moves = append(opening.Moves, m.String())
			pos, turn = next, turn.Opponent()
		}

		opening.STM = turn
		ret = append(ret, opening)
	}
	return ret, nil
}

type pgnGame struct {
	tags     map[string]string
	movetext []string
}

var resultTokens = map[string]bool{"1-0": true, "0-1": true, "1/2-1/2": true, "*": true}

// splitPGNGames tokenizes a PGN file into games of header tags and SAN tokens.
func splitPGNGames(data string) []pgnGame {
	var games []pgnGame
	current := pgnGame{tags: map[string]string{}}
	inMoves := false

	flush := func() {
		if len(current.tags) > 0 || len(current.movetext) > 0 {
			games = append(games, current)
		}
		current = pgnGame{tags: map[string]string{}}
		inMoves = false
	}

	depth := 0 // variation nesting
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "[") && depth == 0 {
			if inMoves {
				flush()
			}
			if name, value, ok := parseTag(line); ok {
				current.tags[name] = value
			}
			continue
		}
		if line == "" {
			continue
		}

		inMoves = true
		ended := false
		for _, token := range tokenizeMovetext(line, &depth) {
			if resultTokens[token] {
				ended = true
				break
			}
			current.movetext = append(current.movetext, token)
		}
		if ended {
			flush()
		}
	}
	flush()
	return games
}

func parseTag(line string) (string, string, bool) {
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")

	i := strings.IndexRune(line, ' ')
	if i < 0 {
		return "", "", false
	}
	name := line[:i]
	value := strings.Trim(strings.TrimSpace(line[i+1:]), `"`)
	return name, value, true
}

// tokenizeMovetext extracts SAN tokens from a movetext line, skipping move numbers,
// comments in braces, parenthesized variations and $-annotations. The depth counter
// carries brace/variation nesting across lines.
func tokenizeMovetext(line string, depth *int) []string {
	var tokens []string
	var sb strings.Builder

	emit := func() {
		token := sb.String()
		sb.Reset()
		if token == "" || strings.HasPrefix(token, "$") {
			return
		}
		token = strings.TrimSuffix(token, ".")
		if token == "" || isMoveNumber(token) {
			return
		}
		if i := strings.LastIndexByte(token, '.'); i >= 0 {
			token = token[i+1:] // "1.e4" and "1...e4" forms
		}
		if token != "" && !isMoveNumber(token) {
			tokens = append(tokens, token)
		}
	}

	for _, r := range line {
		switch {
		case r == '{' || r == '(':
			emit()
			*depth++
		case r == '}' || r == ')':
			if *depth > 0 {
				*depth--
			}
		case *depth > 0:
			// inside comment or variation
		case r == ' ' || r == '\t':
			emit()
		default:
			sb.WriteRune(r)
		}
	}
	emit()
	return tokens
}

func isMoveNumber(token string) bool {
	token = strings.TrimSuffix(token, "...")
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
