package cli

import (
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		579600:   "579,600",
		1159200:  "1,159,200",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
	if got := FormatTHB(533232); got != "฿533,232" {
		t.Errorf("FormatTHB = %q", got)
	}
}

func TestFormatPct(t *testing.T) {
	if got := FormatPct(72.5); got != "72.5%" {
		t.Errorf("FormatPct(72.5) = %q", got)
	}
	if got := FormatPct(80); got != "80%" {
		t.Errorf("FormatPct(80) = %q", got)
	}
}

func TestColumnWidthsCountsGlyphsOnce(t *testing.T) {
	w := ColumnWidths([]string{"City", "Mid"}, [][]string{{"Bangkok", "฿1670k"}}, 2)
	if w[0] != 7 || w[1] != 6 {
		t.Errorf("widths = %v, want [7 6]", w)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Ranking",
		Headers: []string{"City", "Mid"},
		Rows:    [][]string{{"Bangkok", "฿1670k"}, {"Pai", "฿247k"}},
	})
	for _, want := range []string{"Ranking", "Bangkok", "฿1670k", "Pai", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	// title + top + header + sep + 2 rows + bottom
	if lines := strings.Count(out, "\n"); lines != 7 {
		t.Errorf("lines = %d, want 7", lines)
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render nothing")
	}
}
