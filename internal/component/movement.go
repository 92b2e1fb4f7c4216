// component/movement.go
package component

// Position — компонент позиции в мировых координатах (ось Y смотрит вверх)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, единиц в секунду
type Velocity struct {
	X, Y float64
}
