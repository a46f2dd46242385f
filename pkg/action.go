package pkg

type Action string

// Labels of the side panel buttons
const (
	ActionNewGame  Action = "New Game"
	ActionSnapshot Action = "Snapshot"
	ActionQuit     Action = "Quit"
)

// Help lists the keyboard shortcuts shown under the buttons
const Help = "click a piece, then a square\n[::b]r[::-] new game  [::b]s[::-] snapshot  [::b]q[::-] quit"
