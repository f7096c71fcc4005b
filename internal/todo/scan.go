// Package todo scans source files for tagged comments (TODO, FIXME, ...)
// and reports each match with its file and 1-based line number.
package todo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Match is one tagged comment found in a file.
type Match struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`
}

// commentMarkers are stripped from the edges of a reported message.
var commentMarkers = []string{"#", "//", "/*", "*/", "--", `"""`, "'''"}

// ScanFiles scans each file (relative to dir) and returns matches in file
// order, then line order. Unreadable files abort the scan.
func ScanFiles(dir string, files, tags []string) ([]Match, error) {
	var all []Match
	for _, name := range files {
		f, err := os.Open(filepath.Join(dir, name)) //nolint:gosec // file list comes from git, scoped to the project
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", name, err)
		}
		matches, err := Scan(name, f, tags)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", name, err)
		}
		all = append(all, matches...)
	}
	return all, nil
}

// Scan reads r line by line and reports every recognized tag followed by a
// colon. The message is the text after the colon, stripped of surrounding
// whitespace and comment markers.
func Scan(name string, r io.Reader, tags []string) ([]Match, error) {
	var matches []Match
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		for _, tag := range tags {
			idx := strings.Index(text, tag+":")
			if idx < 0 {
				continue
			}
			matches = append(matches, Match{
				Tag:     tag,
				Message: cleanMessage(text[idx+len(tag)+1:]),
				File:    name,
				Line:    line,
			})
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func cleanMessage(s string) string {
	s = strings.TrimSpace(s)
	for changed := true; changed; {
		changed = false
		for _, m := range commentMarkers {
			if strings.HasPrefix(s, m) {
				s = strings.TrimSpace(strings.TrimPrefix(s, m))
				changed = true
			}
			if strings.HasSuffix(s, m) {
				s = strings.TrimSpace(strings.TrimSuffix(s, m))
				changed = true
			}
		}
	}
	return s
}
