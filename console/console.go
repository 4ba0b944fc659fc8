// Package console clears ANSI-capable terminals.
package console

import (
	"io"
	"os"
)

// Seq moves the cursor home (ESC[H), clears the visible screen (ESC[2J) and
// attempts to clear the scrollback buffer (ESC[3J).
const Seq = "\x1b[H\x1b[2J\x1b[3J"

// Fclear writes the clear sequence to w without flushing.
func Fclear(w io.Writer) error {
	_, err := io.WriteString(w, Seq)
	return err
}

// Clear writes the clear sequence to stdout.
func Clear() error {
	return Fclear(os.Stdout)
}
