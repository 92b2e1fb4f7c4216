// Package input describes one tick of player input, independent of the frontend.
package input

// Frame — ввод, снятый один раз за тик
type Frame struct {
	Aim   float64 // Ось gun_angle, номинально [-1, 1]
	Shoot bool    // Кнопка shoot/confirm зажата на этом тике
	Pause bool    // Нажатие паузы (уже по фронту)
	Quit  bool

	Click          bool // Левый клик на этом тике, в экранных пикселях
	ClickX, ClickY int
}

// Edge превращает удерживаемую кнопку в одно срабатывание на нажатие
type Edge struct {
	down bool
}

// Next возвращает true только на тике, когда кнопка перешла из отпущенной в нажатую
func (e *Edge) Next(down bool) bool {
	fired := down && !e.down
	e.down = down
	return fired
}

// Source — то, что умеет снять ввод за тик
type Source interface {
	Poll() Frame
}
