package circlechess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Encode writes a FEN-like string: ranks from the outer seam rank down to
// the centre separated by "/", each rank listing files 0..23 with runs of
// empty tiles as decimal counts, then the side to move and the move count.
func (g *Game) Encode() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		if r < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < RingFiles; f++ {
			p := g.PieceAt(Tile{File: f, Rank: r})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(p.Type, p.Side))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	if g.CurrentSide() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.moveCount))
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodeGame parses Encode's format. The move count may be omitted, in
// which case it is 0 for White to move and 1 for Black.
func DecodeGame(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, ErrInvalidFEN
	}

	var pieces []PieceView
	for i, row := range rows {
		r := Ranks - 1 - i
		f := 0
		run := 0
		for _, ch := range row {
			if ch >= '0' && ch <= '9' {
				run = run*10 + int(ch-'0')
				if run > RingFiles {
					return nil, ErrInvalidFEN
				}
				continue
			}
			f += run
			run = 0
			if f >= RingFiles {
				return nil, ErrInvalidFEN
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidFEN
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			pieces = append(pieces, PieceView{Tile: Tile{File: f, Rank: r}, Type: pt, Side: side})
			f++
		}
		f += run
		if f != RingFiles {
			return nil, ErrInvalidFEN
		}
	}

	var stm Side
	switch parts[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, ErrInvalidFEN
	}
	moveCount := int(stm)
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 0 {
			return nil, ErrInvalidFEN
		}
		if Side(n%2) != stm {
			return nil, fmt.Errorf("%w: move count %d does not match side %s", ErrInvalidFEN, n, stm)
		}
		moveCount = n
	}

	g, err := NewGameFromPieces(pieces, moveCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return g, nil
}
