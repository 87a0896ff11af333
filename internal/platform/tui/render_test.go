package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "Flags", core.ColorWhite)
	s.SetCell(6, 0, core.Cell{Rune: 'F', Color: core.ColorMaroon, Attr: core.AttrBold})
	s.DrawTextColor(0, 1, "12", core.ColorBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for _, want := range []string{"Flags", "F", "1", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCellStyle(t *testing.T) {
	tests := []struct {
		name        string
		attr        core.Attr
		bold, rever bool
	}{
		{"plain", 0, false, false},
		{"bold", core.AttrBold, true, false},
		{"reverse", core.AttrReverse, false, true},
		{"both", core.AttrBold | core.AttrReverse, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := cellStyle(core.ColorRed, tc.attr)
			if st.GetBold() != tc.bold || st.GetReverse() != tc.rever {
				t.Errorf("bold=%v reverse=%v, want %v %v", st.GetBold(), st.GetReverse(), tc.bold, tc.rever)
			}
		})
	}

	// Unknown colours fall back to the default style.
	if st := cellStyle(core.Color(255), 0); st.GetForeground() != colorStyles[core.ColorDefault].GetForeground() {
		t.Error("unknown colour should use the default style")
	}
}
