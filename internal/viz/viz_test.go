package viz

import (
	"reflect"
	"strings"
	"testing"
)

func TestGetTheme(t *testing.T) {
	for _, name := range []string{"dark", "light", "contrast"} {
		th, ok := GetTheme(name)
		if !ok || th.Name != name {
			t.Errorf("GetTheme(%q) = %q, %v", name, th.Name, ok)
		}
	}
	th, ok := GetTheme("neon")
	if ok || th.Name != "dark" {
		t.Errorf("unknown theme should fall back to dark, got %q, %v", th.Name, ok)
	}
}

func TestThemeNamesAndNext(t *testing.T) {
	if got := ThemeNames(); !reflect.DeepEqual(got, []string{"dark", "light", "contrast"}) {
		t.Errorf("ThemeNames = %v", got)
	}
	th := ThemeDark
	for i := 0; i < len(Themes); i++ {
		th = Next(th)
	}
	if th.Name != "dark" {
		t.Errorf("Next should cycle back to dark, got %q", th.Name)
	}
	if Next(Theme{Name: "x"}).Name != Themes[0].Name {
		t.Error("Next of unknown theme should return the first theme")
	}
}

func TestBigCells(t *testing.T) {
	s := NewStyles(ThemeDark)

	out := s.BigCells("⠁⠃", 2)
	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	if got := strings.Count(out, "●"); got != 3 {
		t.Errorf("raised dots = %d, want 3", got)
	}
	if got := strings.Count(out, "○"); got != 9 {
		t.Errorf("flat dots = %d, want 9", got)
	}
	if !strings.Contains(rows[1], "●") {
		t.Error("dot 2 of ⠃ should be on the middle row")
	}
	if strings.Contains(rows[2], "●") {
		t.Error("bottom row should be flat")
	}

	if got := strings.Count(s.BigCells("x", 1), "●"); got != 0 {
		t.Errorf("non-cell should draw blank, got %d raised", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	r, g, b := parseHex("#6c63ff")
	if r != 0x6c || g != 0x63 || b != 0xff {
		t.Errorf("parseHex = %d %d %d", r, g, b)
	}
	if hexColor(r, g, b) != "#6c63ff" {
		t.Errorf("hexColor = %s", hexColor(r, g, b))
	}
	if hexColor(-4, 300, 16) != "#00ff10" {
		t.Errorf("hexColor should clamp, got %s", hexColor(-4, 300, 16))
	}
	if GradientText("", ThemeDark.Primary, ThemeDark.Accent) != "" {
		t.Error("empty gradient should be empty")
	}
}
