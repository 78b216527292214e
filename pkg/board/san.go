package board

import (
	"fmt"
	"strings"
)

// ParseSAN resolves a move in Standard Algebraic Notation, such as "Nf3", "exd5" or
// "O-O", against the given position. Check and annotation suffixes are ignored.
func ParseSAN(pos *Position, turn Color, san string) (Move, error) {
	str := strings.TrimRight(san, "+#!?")
	if str == "" {
		return Move{}, fmt.Errorf("empty san move")
	}

	if str == "O-O" || str == "0-0" {
		return findCastle(pos, turn, KingSideCastle, san)
	}
	if str == "O-O-O" || str == "0-0-0" {
		return findCastle(pos, turn, QueenSideCastle, san)
	}

	piece := Pawn
	if p, ok := ParsePiece(rune(str[0])); ok && str[0] >= 'A' && str[0] <= 'Z' {
		piece = p
		str = str[1:]
	}

	var promotion Piece
	if i := strings.IndexRune(str, '='); i >= 0 {
		p, ok := ParsePiece(rune(str[i+1]))
		if !ok || p == Pawn || p == King {
			return Move{}, fmt.Errorf("invalid promotion in san move: '%v'", san)
		}
		promotion = p
		str = str[:i]
	}

	str = strings.ReplaceAll(str, "x", "")
	if len(str) < 2 {
		return Move{}, fmt.Errorf("invalid san move: '%v'", san)
	}

	to, err := ParseSquareStr(str[len(str)-2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid destination in san move: '%v'", san)
	}

	// Any remaining prefix is a file and/or rank disambiguation.
	var fromFile rune
	var fromRank rune
	for _, r := range str[:len(str)-2] {
		switch {
		case r >= 'a' && r <= 'h':
			fromFile = r
		case r >= '1' && r <= '8':
			fromRank = r
		default:
			return Move{}, fmt.Errorf("invalid disambiguation in san move: '%v'", san)
		}
	}

	var found []Move
	for _, m := range pos.PseudoLegalMoves(turn) {
		if m.Piece != piece || m.To != to || m.Promotion != promotion {
			continue
		}
		if fromFile != 0 && m.From.File().String() != string(fromFile) {
			continue
		}
		if fromRank != 0 && m.From.Rank().String() != string(fromRank) {
			continue
		}
		if _, ok := pos.Move(m); !ok {
			continue
		}
		found = append(found, m)
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Move{}, fmt.Errorf("no legal move matches san move '%v'", san)
	default:
		return Move{}, fmt.Errorf("ambiguous san move '%v'", san)
	}
}

func findCastle(pos *Position, turn Color, t MoveType, san string) (Move, error) {
	for _, m := range pos.PseudoLegalMoves(turn) {
		if m.Type == t {
			if _, ok := pos.Move(m); ok {
				return m, nil
			}
		}
	}
	return Move{}, fmt.Errorf("castling move '%v' not legal", san)
}

// PrintSAN formats a legal move in Standard Algebraic Notation, including a check or
// checkmate suffix.
func PrintSAN(pos *Position, turn Color, m Move) string {
	var sb strings.Builder

	switch m.Type {
	case KingSideCastle:
		sb.WriteString("O-O")
	case QueenSideCastle:
		sb.WriteString("O-O-O")
	default:
		if m.Piece == Pawn {
			if m.Capture.IsValid() || m.Type == EnPassant {
				sb.WriteString(m.From.File().String())
				sb.WriteString("x")
			}
		} else {
			sb.WriteString(strings.ToUpper(m.Piece.String()))
			sb.WriteString(sanDisambiguation(pos, turn, m))
			if m.Capture.IsValid() {
				sb.WriteString("x")
			}
		}
		sb.WriteString(m.To.String())
		if m.Promotion.IsValid() {
			sb.WriteString("=")
			sb.WriteString(strings.ToUpper(m.Promotion.String()))
		}
	}

	if next, ok := pos.Move(m); ok {
		opp := turn.Opponent()
		if next.IsChecked(opp) {
			if hasLegalMove(next, opp) {
				sb.WriteString("+")
			} else {
				sb.WriteString("#")
			}
		}
	}
	return sb.String()
}

// sanDisambiguation returns the minimal origin hint needed to distinguish m from other
// legal moves of the same piece type to the same square.
func sanDisambiguation(pos *Position, turn Color, m Move) string {
	var sameFile, sameRank, others bool
	for _, c := range pos.PseudoLegalMoves(turn) {
		if c.Piece != m.Piece || c.To != m.To || c.From == m.From {
			continue
		}
		if _, ok := pos.Move(c); !ok {
			continue
		}
		others = true
		if c.From.File() == m.From.File() {
			sameFile = true
		}
		if c.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !others:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

func hasLegalMove(pos *Position, turn Color) bool {
	for _, m := range pos.PseudoLegalMoves(turn) {
		if _, ok := pos.Move(m); ok {
			return true
		}
	}
	return false
}
