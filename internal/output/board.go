// Package output renders boards and writes move and suite results as text
// or JSON.
package output

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
)

// emptyCell is drawn for a vacant square.
const emptyCell = "."

// RenderBoard draws the board one rank per line, rank 8 first, each line
// prefixed by its rank label, followed by a rule and a file-label footer:
//
//	8| r n b q k b n r
//	...
//	1| R N B Q K B N R
//	 +----------------
//	   a b c d e f g h
//
// With cfg.Colour set every cell is shaded as a light or dark square.
func RenderBoard(board *chess.Board, cfg *config.RenderConfig) string {
	light := color.New(color.BgHiWhite, color.FgBlack)
	dark := color.New(color.BgGreen, color.FgBlack)
	if cfg.Colour {
		light.EnableColor()
		dark.EnableColor()
	} else {
		light.DisableColor()
		dark.DisableColor()
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteByte(byte(chess.LastRank - row))
		sb.WriteByte('|')
		for col := 0; col < chess.BoardSize; col++ {
			cell := pieceText(board.Squares[row][col], cfg.Glyphs)
			if !cfg.Colour {
				sb.WriteByte(' ')
				sb.WriteString(cell)
				continue
			}
			shade := light
			if (row+col)%2 == 1 {
				shade = dark
			}
			sb.WriteString(shade.Sprint(" " + cell))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(" +")
	sb.WriteString(strings.Repeat("-", 2*chess.BoardSize))
	sb.WriteString("\n  ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(chess.FileBase + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// pieceText returns the text drawn for one cell.
func pieceText(p chess.Piece, glyphs config.GlyphSet) string {
	if p.IsEmpty() {
		return emptyCell
	}
	if glyphs == config.GlyphsLetters {
		return string(p.Letter())
	}
	return p.Glyph()
}
