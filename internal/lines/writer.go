package lines

import (
	"bufio"
	"fmt"
	"io"
)

// WriteChecked writes the raw bytes of every checked line in ingestion order.
func WriteChecked(w io.Writer, lines []Line) (int, error) {
	bw := bufio.NewWriter(w)
	written := 0
	for i := range lines {
		if !lines[i].Checked {
			continue
		}
		if _, err := bw.Write(lines[i].Raw); err != nil {
			return written, fmt.Errorf("write line %d: %w", i, err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush output: %w", err)
	}
	return written, nil
}
