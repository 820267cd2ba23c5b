package i18n_test

import (
	"testing"

	"github.com/reoring/treeval/i18n"
)

func TestT_DefaultEnglish(t *testing.T) {
	if got := i18n.T("missing_key", nil); got != "key missing" {
		t.Fatalf("got %q", got)
	}
}

func TestT_EmbedsMetadata(t *testing.T) {
	if got := i18n.T("no_extractor", map[string]string{"type": "int32"}); got != "no extractor registered for type int32" {
		t.Fatalf("got %q", got)
	}
	if got := i18n.T("missing_key", map[string]string{"key": "a"}); got != "key missing: 'a'" {
		t.Fatalf("got %q", got)
	}
	if got := i18n.T("invalid_type", map[string]string{"expected": "string"}); got != "invalid type (expected string)" {
		t.Fatalf("got %q", got)
	}
}

func TestT_UnknownCodeFallsBackToCode(t *testing.T) {
	if got := i18n.T("mystery_code", nil); got != "mystery_code" {
		t.Fatalf("got %q", got)
	}
}

func TestSetLanguage_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("missing_key", nil); got == "key missing" {
		t.Fatalf("expected a translated message, got %q", got)
	}
	// Unsupported languages fall back to English.
	i18n.SetLanguage("xx")
	if got := i18n.T("missing_key", nil); got != "key missing" {
		t.Fatalf("got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "!" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	if got := i18n.T("overflow", nil); got != "!overflow" {
		t.Fatalf("got %q", got)
	}
	i18n.SetTranslator(nil)
	if got := i18n.T("overflow", nil); got != "value out of range" {
		t.Fatalf("got %q", got)
	}
}
