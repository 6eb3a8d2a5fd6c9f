package game

import (
	"fmt"

	"github.com/vandriyan/autosnake/internal/core"
)

const hudHeight = 2 // HUD text line plus separator

// Render draws the session to the screen buffer: HUD, grid border, agent,
// target, and a terminal overlay when the run has ended. Callers own the
// pacing; Render only reads session state.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	s.renderHUD(dst)

	// Grid box needs one border cell on each side.
	requiredW := s.bounds.W + 2
	requiredH := s.bounds.H + hudHeight + 2
	if dst.Width() < requiredW || dst.Height() < requiredH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", requiredW, requiredH), core.ColorGray)
		return
	}

	offsetX := (dst.Width() - s.bounds.W) / 2
	offsetY := hudHeight + 1

	dst.DrawBox(offsetX-1, offsetY-1, s.bounds.W+2, s.bounds.H+2, core.ColorGray)

	// Target
	dst.SetCell(offsetX+s.target.X, offsetY+s.target.Y, '*', core.ColorBrightRed)

	// Agent, head first
	for i, seg := range s.segments {
		r := 'o'
		c := core.ColorGreen
		if i == 0 {
			r = 'O'
			c = core.ColorBrightGreen
		}
		dst.SetCell(offsetX+seg.X, offsetY+seg.Y, r, c)
	}

	switch s.state {
	case core.StateDead:
		s.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d - press R to restart", s.score))
	case core.StateWon:
		s.renderOverlay(dst, "BOARD FULL - YOU WIN!", fmt.Sprintf("Score: %d - press R to restart", s.score))
	}
}

// renderHUD draws the top status bar.
func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" autosnake | Score: %d  Length: %d  Planner: %s",
		s.score, len(s.segments), s.planner.ID())
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ', core.ColorDefault)
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorYellow)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, line2, core.ColorWhite)
}
