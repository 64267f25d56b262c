package terminal

import (
	"fmt"

	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/gdamore/tcell/v2"
)

const (
	// boardX and boardY are the screen offset of the board border
	boardX = 1
	boardY = 1
	// cellWidth is the number of terminal columns per board cell
	cellWidth = 2
	hudGap    = 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Draw renders a snapshot onto screen and shows it.
func Draw(screen tcell.Screen, snapshot *types.Snapshot) {
	screen.Clear()
	if snapshot == nil {
		screen.Show()
		return
	}

	drawBorder(screen, snapshot.Width, snapshot.Height)
	for y := 0; y < snapshot.Height; y++ {
		for x := 0; x < snapshot.Width; x++ {
			drawCell(screen, x, y, snapshot.Cell(x, y))
		}
	}
	drawHUD(screen, snapshot)

	if lines := overlayText(snapshot.Phase); len(lines) > 0 {
		centerY := boardY + 1 + snapshot.Height/2 - len(lines)/2
		for i, line := range lines {
			style := textStyle
			if i == 0 {
				style = titleStyle
			}
			x := boardX + 1 + (snapshot.Width*cellWidth-len(line))/2
			drawString(screen, max(x, 0), centerY+i, line, style)
		}
	}

	screen.Show()
}

func drawBorder(screen tcell.Screen, width, height int) {
	right := boardX + 1 + width*cellWidth
	bottom := boardY + 1 + height
	for x := boardX; x <= right; x++ {
		screen.SetContent(x, boardY, '─', nil, borderStyle)
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := boardY; y <= bottom; y++ {
		screen.SetContent(boardX, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	screen.SetContent(boardX, boardY, '┌', nil, borderStyle)
	screen.SetContent(right, boardY, '┐', nil, borderStyle)
	screen.SetContent(boardX, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func drawCell(screen tcell.Screen, x, y int, kind types.PieceKind) {
	sx := boardX + 1 + x*cellWidth
	sy := boardY + 1 + y
	if kind == types.PieceKindNone {
		for i := 0; i < cellWidth; i++ {
			screen.SetContent(sx+i, sy, ' ', nil, tcell.StyleDefault)
		}
		return
	}
	c := game.PieceColor(kind)
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for i := 0; i < cellWidth; i++ {
		screen.SetContent(sx+i, sy, ' ', nil, style)
	}
}

func drawHUD(screen tcell.Screen, snapshot *types.Snapshot) {
	x := boardX + 2 + snapshot.Width*cellWidth + hudGap
	y := boardY + 1
	drawString(screen, x, y, "TETRIS", titleStyle)
	drawString(screen, x, y+2, fmt.Sprintf("Score  %d", snapshot.Score), textStyle)
	drawString(screen, x, y+3, fmt.Sprintf("High   %d", snapshot.HighScore), textStyle)
	drawString(screen, x, y+4, fmt.Sprintf("Level  %d", snapshot.Level), textStyle)
	drawString(screen, x, y+5, fmt.Sprintf("Lines  %d", snapshot.Lines), textStyle)

	drawString(screen, x, y+8, "←/→ a/d  move", borderStyle)
	drawString(screen, x, y+9, "↑ w      rotate", borderStyle)
	drawString(screen, x, y+10, "↓ s      drop", borderStyle)
	drawString(screen, x, y+11, "p        pause", borderStyle)
	drawString(screen, x, y+12, "q Esc    quit", borderStyle)
}

func overlayText(phase types.Phase) []string {
	switch phase {
	case types.PhaseNotStarted:
		return []string{"TETRIS", "Enter to start"}
	case types.PhasePaused:
		return []string{"PAUSED", "p to resume"}
	case types.PhaseGameOver:
		return []string{"GAME OVER", "Enter to play", "q to quit"}
	}
	return nil
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
