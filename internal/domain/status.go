package domain

// GameStatus - стадия жизненного цикла комнаты.
// Unseated -> Seated -> Assigned -> Ready -> Ongoing -> Ended,
// RestartGame возвращает Ended -> Unseated/Seated.
type GameStatus uint8

const (
	StatusUnseated GameStatus = iota
	StatusSeated
	StatusAssigned
	StatusReady
	StatusOngoing
	StatusEnded
)

var statusToString = map[GameStatus]string{
	StatusUnseated: "unseated",
	StatusSeated:   "seated",
	StatusAssigned: "assigned",
	StatusReady:    "ready",
	StatusOngoing:  "ongoing",
	StatusEnded:    "ended",
}

// String реализует интерфейс Stringer
func (s GameStatus) String() string {
	if val, ok := statusToString[s]; ok {
		return val
	}
	return "unknown"
}
