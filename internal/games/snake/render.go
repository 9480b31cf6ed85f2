package snake

import (
	"fmt"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Glyphs are the runes used to draw a frame.
type Glyphs struct {
	Head       rune
	Body       rune
	Wall       rune
	Food       rune
	Background rune
}

// DefaultGlyphs returns the classic look: 'S' snake, '#' walls, '•' food.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Head:       'S',
		Body:       'S',
		Wall:       '#',
		Food:       '•',
		Background: ' ',
	}
}

// Render draws the frame into dst with the board's top-left corner at
// (0, 0): walls, background, snake, food, then the score on the top wall.
func (f Frame) Render(dst *core.Screen, g Glyphs) {
	board := core.NewRect(0, 0, f.Width, f.Height)

	dst.DrawBorder(board, g.Wall, core.ColorGray)
	dst.DrawRect(board.Inset(1), g.Background, core.ColorDefault)

	// Head last so it wins if cells overlap.
	for i := len(f.Body) - 1; i > 0; i-- {
		dst.SetColored(f.Body[i].X, f.Body[i].Y, g.Body, core.ColorGreen)
	}
	if len(f.Body) > 0 {
		head := f.Head()
		dst.SetColored(head.X, head.Y, g.Head, core.ColorBrightGreen)
	}

	if f.HasFood {
		dst.SetColored(f.Food.X, f.Food.Y, g.Food, core.ColorBrightRed)
	}

	score := fmt.Sprintf("Score: %d", f.Score)
	x := core.Clamp(f.Width/2-core.RuneLen(score)/2-1, 0, f.Width-1)
	dst.DrawText(x, 0, score, core.ColorBrightWhite)

	if f.State == StateEnded {
		switch f.Reason {
		case EndWall, EndSelf:
			renderOverlay(dst, board, "Game Over", fmt.Sprintf("Final Score: %d", f.Score))
		case EndBoardFull:
			renderOverlay(dst, board, "You Win!", fmt.Sprintf("Final Score: %d", f.Score))
		}
	}
}

// renderOverlay draws a boxed two-line message centered on the board.
// The board is drawn at the screen origin, so centering on the screen
// centers on the board.
func renderOverlay(dst *core.Screen, board core.Rect, line1, line2 string) {
	boxW := core.Max(core.RuneLen(line1), core.RuneLen(line2)) + 4
	boxH := 5
	cx, cy := board.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBorder(box, '+', core.ColorYellow)

	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorBrightWhite)
}

// String draws the frame with the default glyphs as plain text.
func (f Frame) String() string {
	s := core.NewScreen(f.Width, f.Height)
	f.Render(s, DefaultGlyphs())
	return s.String()
}
