// Command tuit draws the tuit demo widgets on a terminal.
//
// Usage:
//
//	tuit prompt              Show a centred yes/no prompt
//	tuit split               Show two halves of a split view
//	tuit stacking            Show three stacked text widgets
//	tuit config              Print or create the configuration file
//	tuit version             Print the version
//
// The --renderer flag picks how frames reach the terminal: "ansi" prints a
// single frame, "tcell" and "bubble" run interactively until the widget
// finishes or Ctrl-C is pressed.
package main

import (
	"os"
)

func main() {
	if err := NewApp().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
