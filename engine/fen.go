package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/chess"
)

// FromFEN creates a game from a six-field FEN string: placement, side
// to move, castling rights, en passant target, halfmove clock and
// fullmove number.
//
// All returned errors match chess.ErrInvalidFEN via errors.Is and carry
// the failure kind in a *chess.FENError.
func FromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return nil, &chess.FENError{Kind: chess.FENTooShort}
	}

	board, err := chess.ParsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:          board,
		fullmoveNumber: 1,
	}

	switch fields[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return nil, &chess.FENError{Kind: chess.FENInvalidTurn, Text: fields[1]}
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				g.whiteRights.Kingside = true
			case 'Q':
				g.whiteRights.Queenside = true
			case 'k':
				g.blackRights.Kingside = true
			case 'q':
				g.blackRights.Queenside = true
			}
		}
	}

	if fields[3] != "-" {
		target, err := chess.ParsePosition(fields[3])
		if err != nil {
			return nil, &chess.FENError{Kind: chess.FENInvalidEnPassantTarget, Err: err}
		}
		g.epTarget = target
		g.epValid = true
	}

	if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
		g.halfmoveClock = n
	}
	if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
		g.fullmoveNumber = n
	}

	return g, nil
}

// FEN renders the position as a six-field FEN string, the inverse of
// FromFEN.
func (g *Game) FEN() string {
	var sb strings.Builder

	sb.WriteString(g.board.Placement())
	sb.WriteByte(' ')

	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	writeCastlingRights(&sb, g.whiteRights, g.blackRights)
	sb.WriteByte(' ')

	if g.epValid {
		sb.WriteString(g.epTarget.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.fullmoveNumber)
	return sb.String()
}

// writeCastlingRights writes the held rights in the fixed KQkq order,
// or "-" when none are held.
func writeCastlingRights(sb *strings.Builder, white, black CastlingRights) {
	any := false
	if white.Kingside {
		sb.WriteByte('K')
		any = true
	}
	if white.Queenside {
		sb.WriteByte('Q')
		any = true
	}
	if black.Kingside {
		sb.WriteByte('k')
		any = true
	}
	if black.Queenside {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}
