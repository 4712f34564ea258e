package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTable_Lines(t *testing.T) {
	table := &Table{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"rows read", "12"},
			{"kept", "9"},
		},
	}

	want := []string{
		"| Metric    | Count |",
		"| --------- | ----- |",
		"| rows read | 12    |",
		"| kept      | 9     |",
	}

	got := table.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTable_Lines_WideCharacters(t *testing.T) {
	table := &Table{
		Header: []string{"Input", "Rows"},
		Rows: [][]string{
			{"員工.csv", "3"},
			{"staff.csv", "10"},
		},
	}

	lines := table.Lines()

	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d display width = %d, want %d: %q", i, w, width, line)
		}
	}
}

func TestTable_Lines_RaggedRowsAndMinWidth(t *testing.T) {
	table := &Table{
		Header: []string{"A"},
		Rows:   [][]string{{"x", "y"}},
	}

	lines := table.Lines()
	if lines[1] != "| --- | --- |" {
		t.Errorf("separator = %q", lines[1])
	}

	if lines[2] != "| x   | y   |" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTable_Lines_Empty(t *testing.T) {
	if lines := (&Table{}).Lines(); lines != nil {
		t.Errorf("Lines() = %v, want nil", lines)
	}
}

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer

	table := &Table{Header: []string{"k", "v"}, Rows: [][]string{{"a", "1"}}}
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("Render output = %q", buf.String())
	}
}
