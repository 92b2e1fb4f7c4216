// internal/termview/view.go
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"tank-duel/internal/app"
	"tank-duel/internal/component"
	"tank-duel/internal/config"
	"tank-duel/internal/utils"
)

// Ячейка терминала примерно вдвое выше своей ширины
const (
	Cols = config.GameWidth
	Rows = config.GameHeight / 2
)

var (
	skyStyle    = tcell.StyleDefault.Background(tcell.ColorNavy)
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorMaroon)
	tankStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorNavy)
	gunStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	bulletStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Cell переводит мировые координаты в клетку терминала
func Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x))
	row = int(math.Floor((config.GameHeight - y) / 2))
	return col, row
}

// Draw рисует снимок: небо, земля, сущности и строка состояния под полем
func Draw(screen tcell.Screen, snap app.Snapshot, groundHeight float64) {
	screen.Clear()

	_, groundRow := Cell(0, groundHeight)
	for row := 0; row < Rows; row++ {
		style := skyStyle
		ch := ' '
		if row >= groundRow {
			style = groundStyle
			ch = '▒'
		}
		for col := 0; col < Cols; col++ {
			screen.SetContent(col, row, ch, nil, style)
		}
	}

	for _, d := range snap.Entities {
		switch d.Sprite {
		case component.SpriteTank:
			drawTank(screen, d.Transform)
		case component.SpriteGun:
			drawGun(screen, d.Transform)
		case component.SpriteBullet:
			put(screen, d.Transform.X, d.Transform.Y, '●', bulletStyle)
		}
	}

	status := fmt.Sprintf(" %-16s angle %5.1f°  ←↓/↑→ aim  space fire  p pause  esc quit",
		snap.Turn, utils.RadToDeg(snap.PlayerAngle))
	drawText(screen, 0, Rows, status, hudStyle)
}

func drawTank(screen tcell.Screen, t component.Transform) {
	for dx := -3.0; dx <= 3.0; dx++ {
		put(screen, t.X+dx, t.Y-1, '█', tankStyle)
	}
	for dx := -2.0; dx <= 2.0; dx++ {
		put(screen, t.X+dx, t.Y+1, '▄', tankStyle)
	}
}

// drawGun — ствол от центра танка до дульного среза
func drawGun(screen tcell.Screen, t component.Transform) {
	dx, dy := utils.Decompose(t.Rotation, 1)
	dx *= t.ScaleX
	for step := 1.0; step <= config.MuzzleOffset; step++ {
		put(screen, t.X+dx*step, t.Y+dy*step, '•', gunStyle)
	}
}

func put(screen tcell.Screen, x, y float64, ch rune, style tcell.Style) {
	col, row := Cell(x, y)
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return
	}
	screen.SetContent(col, row, ch, nil, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
