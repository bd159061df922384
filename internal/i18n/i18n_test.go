package i18n

import (
	"strings"
	"testing"
)

func TestTranslate_FallbackChain(t *testing.T) {
	tr := NewTranslator()

	if got := tr.Translate("bot_greeting_1", "es", nil); !strings.HasPrefix(got, "¡Hola!") {
		t.Fatalf("expected spanish greeting, got %q", got)
	}

	// Idioma desconocido cae al inglés.
	en := tr.Translate("bot_greeting_1", "en", nil)
	if got := tr.Translate("bot_greeting_1", "fr", nil); got != en {
		t.Fatalf("expected english fallback, got %q", got)
	}

	// Clave desconocida cae a la clave cruda.
	if got := tr.Translate("no_such_key", "en", nil); got != "no_such_key" {
		t.Fatalf("expected raw key fallback, got %q", got)
	}
}

func TestTranslate_Interpolation(t *testing.T) {
	tr := NewTranslator()

	got := tr.Translate("assessment_result", "en", map[string]string{"condition": "Flu"})
	if got != "Assessment: Flu" {
		t.Fatalf("unexpected interpolation: %q", got)
	}

	got = tr.Translate("emergency_services", "es", map[string]string{"numbers": "911"})
	if got != "Servicios de emergencia: 911" {
		t.Fatalf("unexpected interpolation: %q", got)
	}

	// Parámetros sin marcador en el template no rompen nada.
	got = tr.Translate("urgent_rec_1", "en", map[string]string{"unused": "x"})
	if got != "Your symptoms require prompt medical attention" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEnglishCatalogCoversSpanishKeys(t *testing.T) {
	// El inglés es el fallback: toda clave española tiene que existir ahí.
	for key := range catalogES {
		if _, ok := catalogEN[key]; !ok {
			t.Fatalf("spanish key %q missing from english catalog", key)
		}
	}
}

func TestSupportedAndLanguages(t *testing.T) {
	tr := NewTranslator()

	if !tr.Supported("en") || !tr.Supported("es") {
		t.Fatalf("expected en and es supported")
	}
	if tr.Supported("zz") {
		t.Fatalf("did not expect zz supported")
	}

	langs := tr.Languages()
	if len(langs) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(langs))
	}
	if langs[0].Code != "en" {
		t.Fatalf("expected english first, got %q", langs[0].Code)
	}
}
