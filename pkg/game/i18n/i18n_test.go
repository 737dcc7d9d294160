package i18n

import "testing"

func TestInit(t *testing.T) {
	defer Init(DefaultLanguage)

	tests := []struct {
		lang    string
		wantErr bool
		paused  string
	}{
		{"en", false, "Paused"},
		{"es", false, "En pausa"},
		{"de_DE.UTF-8", false, "Pausiert"},
		{"", false, "Paused"},
		{"xx", true, "Paused"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			err := Init(tt.lang)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init(%q) err = %v, wantErr %v", tt.lang, err, tt.wantErr)
			}
			if got := T("PAUSED"); got != tt.paused {
				t.Errorf("T(PAUSED) = %q, want %q", got, tt.paused)
			}
		})
	}
}

func TestT_UnknownKey(t *testing.T) {
	if got := T("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("T(NOT_A_KEY) = %q, want key back", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) < 3 {
		t.Errorf("Languages() = %v, want en, es, de", langs)
	}
}
