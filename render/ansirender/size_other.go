//go:build !unix

package ansirender

import "golang.org/x/term"

func getTerminalSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
