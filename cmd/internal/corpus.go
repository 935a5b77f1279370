package internal

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one description from a corpus file.
type Entry struct {
	Line   int
	Source string
}

// ReadCorpus reads descriptions from path, one per line. Blank lines and
// lines starting with ';' are skipped.
func ReadCorpus(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		entries = append(entries, Entry{Line: line, Source: text})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return entries, nil
}

// SumValues returns the total of all counts in m.
func SumValues(m map[string]int) int {
	sum := 0
	for _, v := range m {
		sum += v
	}
	return sum
}

// SortByCount returns the keys of m by descending count, ties by key.
func SortByCount(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
