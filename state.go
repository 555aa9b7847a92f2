package main

// State is where the game is between menus and play.
type State int

const (
	MainMenu State = iota
	Playing
	Win
	GameOver
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main-menu"
	case Playing:
		return "playing"
	case Win:
		return "win"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}
