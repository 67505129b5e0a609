// Package testfmt parses the line-oriented test-case format for driving
// table tests from external corpora (no other linex package imports it):
// "<text>|<pattern>|<positions>", where positions is NOT_FOUND/false or a
// comma-separated ascending integer list. Blank lines, lines starting
// with '#', and lines without exactly two '|' separators are skipped.
//
// It is test tooling only, never imported by non-test code.
package testfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Case is one parsed test-suite line.
type Case struct {
	Text      string
	Pattern   string
	Found     bool
	Positions []int
}

// Parse reads cases from r, skipping blank lines, comment lines (leading
// '#'), and malformed lines (not exactly two '|' separators).
func Parse(r io.Reader) ([]Case, error) {
	var cases []Case
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		parts := strings.Split(text, "|")
		if len(parts) != 3 {
			continue
		}
		c, err := parseCase(parts[0], parts[1], parts[2])
		if err != nil {
			return nil, fmt.Errorf("testfmt: line %d: %w", line, err)
		}
		cases = append(cases, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseCase(text, pattern, positions string) (Case, error) {
	c := Case{Text: text, Pattern: pattern}
	p := strings.TrimSpace(positions)
	if p == "NOT_FOUND" || p == "false" {
		return c, nil
	}
	c.Found = true
	for _, tok := range strings.Split(p, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Case{}, fmt.Errorf("bad position %q: %w", tok, err)
		}
		c.Positions = append(c.Positions, n)
	}
	return c, nil
}
