// internal/utils/math.go
package utils

import "math"

// MaxGunAngle — ствол смотрит строго вверх
const MaxGunAngle = math.Pi / 2

// ClampAngle ограничивает угол возвышения диапазоном [0, π/2]; NaN даёт 0
func ClampAngle(angle float64) float64 {
	if math.IsNaN(angle) || angle < 0 {
		return 0
	}
	if angle > MaxGunAngle {
		return MaxGunAngle
	}
	return angle
}

// Decompose раскладывает угол и модуль на компоненты вектора
func Decompose(angle, magnitude float64) (dx, dy float64) {
	return magnitude * math.Cos(angle), magnitude * math.Sin(angle)
}

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg переводит радианы в градусы
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SanitizeAxis приводит значение оси ввода к конечному числу в [-1, 1].
// NaN и бесконечности превращаются в 0, чтобы не отравить угол ствола.
func SanitizeAxis(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
