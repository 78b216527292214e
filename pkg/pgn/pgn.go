// Package pgn serializes finished games as PGN records and appends them to a transcript
// file, one whole record at a time.
package pgn

import (
	"fmt"
	"strings"

	"github.com/chessbench/tourneycore/pkg/board"
	"github.com/chessbench/tourneycore/pkg/board/fen"
	"github.com/chessbench/tourneycore/pkg/match"
)

// Build renders one finished game as a PGN record: the seven-tag roster plus
// TimeControl and Termination tags, an FEN/SetUp pair when the opening is not the
// standard start position, and a {score/depth time} comment on each played move.
func Build(data match.Data, event string, gameID int) (string, error) {
	var sb strings.Builder

	tag := func(name, value string) {
		fmt.Fprintf(&sb, "[%v %q]\n", name, value)
	}

	tag("Event", event)
	tag("Site", "?")
	tag("Date", data.Start.Format("2006.01.02"))
	tag("Round", fmt.Sprintf("%v", data.Round+1))
	tag("White", data.White.Name)
	tag("Black", data.Black.Name)
	tag("Result", data.Result.String())
	tag("TimeControl", data.White.TC.PGN())
	if data.Reason != "" {
		tag("Termination", data.Reason)
	}
	tag("GameID", fmt.Sprintf("%v", gameID))

	start := data.Opening.FEN
	if start == "" {
		start = fen.Initial
	} else {
		tag("FEN", start)
		tag("SetUp", "1")
	}
	sb.WriteString("\n")

	movetext, err := buildMovetext(data, start)
	if err != nil {
		return "", err
	}
	sb.WriteString(movetext)
	sb.WriteString(data.Result.String())
	sb.WriteString("\n\n")

	return sb.String(), nil
}

// buildMovetext renders the opening moves (uncommented) followed by the played moves with
// their search-info comments, wrapped at a conventional line width.
func buildMovetext(data match.Data, start string) (string, error) {
	pos, turn, np, fm, err := fen.Decode(start)
	if err != nil {
		return "", fmt.Errorf("pgn: invalid opening fen %q: %v", start, err)
	}
	b := board.NewBoard(board.NewPolyglotTable(), pos, turn, np, fm)

	var tokens []string
	emit := func(san string) {
		if b.Turn() == board.White {
			tokens = append(tokens, fmt.Sprintf("%v. %v", b.FullMoves(), san))
		} else if len(tokens) == 0 {
			tokens = append(tokens, fmt.Sprintf("%v... %v", b.FullMoves(), san))
		} else {
			tokens = append(tokens, san)
		}
	}

	push := func(uci string, san string) error {
		mv, err := board.ParseMove(uci)
		if err != nil {
			return fmt.Errorf("pgn: invalid move %q: %v", uci, err)
		}
		for _, candidate := range b.Position().PseudoLegalMoves(b.Turn()) {
			if candidate.Equals(mv) {
				if san == "" {
					san = board.PrintSAN(b.Position(), b.Turn(), candidate)
				}
				emit(san)
				if !b.PushMove(candidate) {
					return fmt.Errorf("pgn: illegal move %q", uci)
				}
				return nil
			}
		}
		return fmt.Errorf("pgn: unknown move %q", uci)
	}

	for _, uci := range data.Opening.Moves {
		if err := push(uci, ""); err != nil {
			return "", err
		}
	}
	for _, m := range data.Moves {
		if err := push(m.UCI, m.SAN); err != nil {
			return "", err
		}
		tokens[len(tokens)-1] += " " + comment(m)
	}

	return wrap(tokens, 80), nil
}

// comment renders the per-move search info in the conventional {score/depth time} form.
func comment(m match.MoveRecord) string {
	var score string
	if m.Mate != 0 {
		if m.Mate > 0 {
			score = fmt.Sprintf("+M%v", m.Mate)
		} else {
			score = fmt.Sprintf("-M%v", -m.Mate)
		}
	} else {
		score = fmt.Sprintf("%+.2f", float64(m.ScoreCP)/100.0)
	}
	return fmt.Sprintf("{%v/%v %.3fs}", score, m.Depth, float64(m.TimeMs)/1000.0)
}

// wrap joins tokens into lines of at most width characters.
func wrap(tokens []string, width int) string {
	var sb strings.Builder
	line := 0
	for i, t := range tokens {
		if i > 0 {
			if line+1+len(t) > width {
				sb.WriteString("\n")
				line = 0
			} else {
				sb.WriteString(" ")
				line++
			}
		}
		sb.WriteString(t)
		line += len(t)
	}
	sb.WriteString("\n")
	return sb.String()
}
