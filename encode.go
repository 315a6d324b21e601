package finance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// decodeLines reads one JSON document per line. Blank lines are skipped so
// hand-edited files stay readable.
func decodeLines[T any](r io.Reader) ([]T, error) {
	var all []T
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		all = append(all, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return all, nil
}

// encodeLines writes one JSON document per line.
func encodeLines[T any](w io.Writer, all []T) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, v := range all {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
