package i18n

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"es", "es"},
		{"en", "en"},
		{"es-MX", "es"},
		{"en-GB", "en"},
		{"fr", "es"},
		{"not a tag!", "es"},
	}

	for _, tt := range tests {
		if got := New(tt.lang).Lang(); got != tt.want {
			t.Errorf("New(%q).Lang() = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestSprintf(t *testing.T) {
	es := New("es")
	en := New("en")

	if got := es.Sprintf("history is empty"); got != "el historial está vacío" {
		t.Errorf("es = %q", got)
	}
	if got := en.Sprintf("history is empty"); got != "history is empty" {
		t.Errorf("en = %q", got)
	}
	if got := es.Sprintf("deleted entry %d", 7); got != "entrada 7 eliminada" {
		t.Errorf("es args = %q", got)
	}
	if got := en.Sprintf("deleted entry %d", 7); got != "deleted entry 7" {
		t.Errorf("en args = %q", got)
	}
	if got := es.Sprintf("untranslated %s", "x"); got != "untranslated x" {
		t.Errorf("missing key = %q", got)
	}
}
