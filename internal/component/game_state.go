package component

// TurnState — чей сейчас ход
type TurnState int

const (
	PlayerTurn TurnState = iota
	AITurn
	BulletInFlight
)

func (s TurnState) String() string {
	switch s {
	case PlayerTurn:
		return "PlayerTurn"
	case AITurn:
		return "AITurn"
	case BulletInFlight:
		return "BulletInFlight"
	default:
		return "Unknown"
	}
}
