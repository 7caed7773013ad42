package lineup

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Load reads a lineup file, one name per line.
//
// Names are trimmed and NFC normalized so the same name typed on two
// keyboards compares equal. Order is preserved. Blank lines are dropped
// wherever they appear, so a later Save rewrites "A\n\nB" as "A\nB".
func Load(path string) (Lineup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(string(data)), nil
}

// Parse splits newline-delimited text into a Lineup, skipping blank and
// whitespace-only lines.
func Parse(text string) Lineup {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var l Lineup
	for _, line := range strings.Split(text, "\n") {
		name := norm.NFC.String(strings.TrimSpace(line))
		if name == "" {
			continue
		}
		l = append(l, name)
	}
	return l
}

// Save overwrites path with the names joined by newlines.
// No trailing newline is written.
func Save(path string, l Lineup) error {
	if err := os.WriteFile(path, []byte(strings.Join(l, "\n")), 0o644); err != nil {
		return fmt.Errorf("save lineup %s: %w", path, err)
	}
	return nil
}
