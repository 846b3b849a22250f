// Debug printing for Dense matrices. Fprint targets an arbitrary writer so
// callers (and tests) can capture output; Print is the stdout convenience.
// The format is intended for human eyes, not machine parsing.

package matrix

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes a plain textual rendering of m to w: one line per row,
// elements separated by a single space, %g formatting, one trailing newline
// per row. Returns the first write error encountered.
// Complexity: O(r*c).
func (m *Dense) Fprint(w io.Writer) error {
	var i, j int
	for i = 0; i < m.r; i++ { // one output line per row
		for j = 0; j < m.c; j++ {
			if j > 0 {
				// single space between neighboring elements
				if _, err := io.WriteString(w, " "); err != nil {
					return fmt.Errorf("Dense.Fprint: %w", err)
				}
			}
			if _, err := fmt.Fprintf(w, "%g", m.data[i*m.c+j]); err != nil {
				return fmt.Errorf("Dense.Fprint: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("Dense.Fprint: %w", err)
		}
	}

	return nil
}

// Print dumps m to standard output via Fprint.
// Pure side effect; the write error (vanishingly rare for stdout) is dropped,
// matching the debug-only intent. Use Fprint when the error matters.
func (m *Dense) Print() {
	_ = m.Fprint(os.Stdout)
}
