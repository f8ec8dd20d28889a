package models

// GameState is the life cycle of a tournament game.
type GameState int

const (
	GameStateNone GameState = iota
	GameStatePregame
	GameStateStarted
	GameStateOver
)

func (s GameState) String() string {
	switch s {
	case GameStatePregame:
		return "pregame"
	case GameStateStarted:
		return "started"
	case GameStateOver:
		return "over"
	default:
		return "none"
	}
}

// ParseGameState accepts either the name or the number of a state.
func ParseGameState(s string) (GameState, bool) {
	switch s {
	case "pregame", "1":
		return GameStatePregame, true
	case "started", "2":
		return GameStateStarted, true
	case "over", "3":
		return GameStateOver, true
	default:
		return GameStateNone, false
	}
}

type Player struct {
	Name string `json:"name"`
}

// Game is a tournament pairing. Winner is empty until the game is over,
// and stays empty when neither player won.
type Game struct {
	Player1 string    `json:"player1"`
	Player2 string    `json:"player2"`
	State   GameState `json:"state"`
	Winner  string    `json:"winner"`
}

type PlayerStats struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}
