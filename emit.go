package m1asm

import (
	"fmt"
	"io"
)

// EmittedLine is one fully encoded instruction ready for output.
type EmittedLine struct {
	Address uint16
	Word    uint64
}

// Emit writes the title line followed by one "ADDR  WORD" line per entry,
// in original source order, to w.
func Emit(w io.Writer, title string, lines []EmittedLine) error {
	if _, err := fmt.Fprintf(w, "CM %s", title); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "\n%03X  %010X", l.Address, l.Word); err != nil {
			return err
		}
	}
	return nil
}
