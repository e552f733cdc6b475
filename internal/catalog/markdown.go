// Package catalog loads a song repertoire from a Markdown table so that a
// fresh database can be seeded at startup.
//
// Expected layout (header names are case-insensitive, column order is free):
//
//	| Title     | Artist      | Genre | Relevance |
//	|-----------|-------------|-------|-----------|
//	| Yesterday | The Beatles | pop   | high      |
//
// Lines outside the table are ignored. A missing relevance column or an empty
// cell leaves relevance empty, which the song service treats as medium.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/services"
)

var headerAliases = map[string]string{
	"title":     "title",
	"song":      "title",
	"artist":    "artist",
	"genre":     "genre",
	"relevance": "relevance",
	"tier":      "relevance",
}

// LoadMarkdown reads the table at path.
func LoadMarkdown(path string) ([]services.CreateSongInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMarkdown(f)
}

// ParseMarkdown extracts one song per table row. The first table row is the
// header; separator rows ("|---|:--:|") are skipped.
func ParseMarkdown(r io.Reader) ([]services.CreateSongInput, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var (
		cols []string // column role by position; "" = ignored
		out  []services.CreateSongInput
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(text, "|") || !strings.HasSuffix(text, "|") || len(text) < 2 {
			continue
		}
		cells := splitRow(text)
		if isSeparator(cells) {
			continue
		}
		if cols == nil {
			var err error
			if cols, err = headerColumns(cells); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}

		var in services.CreateSongInput
		for i, cell := range cells {
			if i >= len(cols) {
				break
			}
			switch cols[i] {
			case "title":
				in.Title = cell
			case "artist":
				in.Artist = cell
			case "genre":
				in.Genre = cell
			case "relevance":
				in.Relevance = domain.Relevance(cell)
			}
		}
		if in.Title == "" && in.Artist == "" && in.Genre == "" {
			continue
		}
		out = append(out, in)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func splitRow(line string) []string {
	raw := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, len(raw))
	for i, c := range raw {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func isSeparator(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, ":- ") != "" {
			return false
		}
	}
	return true
}

func headerColumns(cells []string) ([]string, error) {
	cols := make([]string, len(cells))
	seen := map[string]bool{}
	for i, c := range cells {
		role := headerAliases[strings.ToLower(c)]
		cols[i] = role
		if role != "" {
			seen[role] = true
		}
	}
	for _, need := range []string{"title", "artist", "genre"} {
		if !seen[need] {
			return nil, fmt.Errorf("catalog header lacks a %q column", need)
		}
	}
	return cols, nil
}
