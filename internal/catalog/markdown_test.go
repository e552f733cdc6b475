package catalog

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "repertoire.md")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	return p
}

func TestLoadMarkdown_MissingFile(t *testing.T) {
	_, err := LoadMarkdown(filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadMarkdown_ParsesTable(t *testing.T) {
	md := `# Repertoire

Intro paragraph that is not a table.

| Title     | Artist      | Genre | Relevance |
|-----------|-------------|:-----:|-----------|
| Yesterday | The Beatles | pop   | high      |
| Creep     | Radiohead   | rock  |           |

| not | closed
`
	songs, err := LoadMarkdown(writeTemp(t, md))
	if err != nil {
		t.Fatalf("LoadMarkdown: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("got %d songs: %+v", len(songs), songs)
	}
	if songs[0].Title != "Yesterday" || songs[0].Artist != "The Beatles" || songs[0].Genre != "pop" || songs[0].Relevance != domain.RelevanceHigh {
		t.Fatalf("row 1 = %+v", songs[0])
	}
	if songs[1].Title != "Creep" || songs[1].Relevance != "" {
		t.Fatalf("row 2 = %+v", songs[1])
	}
}

func TestParseMarkdown_HeaderOrderAndAliases(t *testing.T) {
	md := strings.Join([]string{
		"| Genre | Notes | Song | Artist | Tier |",
		"|---|---|---|---|---|",
		"| jazz | slow | Blue in Green | Miles Davis | low |",
		"| | | | | |",
	}, "\n")
	songs, err := ParseMarkdown(strings.NewReader(md))
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	if len(songs) != 1 {
		t.Fatalf("blank rows must be skipped, got %+v", songs)
	}
	got := songs[0]
	if got.Title != "Blue in Green" || got.Artist != "Miles Davis" || got.Genre != "jazz" || got.Relevance != domain.RelevanceLow {
		t.Fatalf("row = %+v", got)
	}
}

func TestParseMarkdown_HeaderMissingColumn(t *testing.T) {
	md := "| Title | Genre |\n|---|---|\n| x | y |\n"
	if _, err := ParseMarkdown(strings.NewReader(md)); err == nil || !strings.Contains(err.Error(), `"artist"`) {
		t.Fatalf("expected missing artist column error, got %v", err)
	}
}

func TestParseMarkdown_NoTable(t *testing.T) {
	songs, err := ParseMarkdown(strings.NewReader("just prose\n\nmore prose\n"))
	if err != nil || len(songs) != 0 {
		t.Fatalf("ParseMarkdown(prose) = %+v, %v", songs, err)
	}
}

func TestParseMarkdown_LineTooLong(t *testing.T) {
	long := "| " + strings.Repeat("a", 5*1024*1024) + " |"
	_, err := ParseMarkdown(strings.NewReader(long))
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("expected bufio.ErrTooLong, got %v", err)
	}
}

func TestIsSeparator(t *testing.T) {
	if !isSeparator([]string{"---", ":--:", "--:"}) {
		t.Fatalf("separator not detected")
	}
	if isSeparator([]string{"---", "x"}) {
		t.Fatalf("content row detected as separator")
	}
}
