package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"key": "age", "index": "2", "first": "0"}

	// default is en
	if msg := T("duplicate_key", data); msg != "duplicate key age at position 2 (first declared at 0)" {
		t.Fatalf("unexpected english message %q", msg)
	}

	SetLanguage("ja")
	if msg := T("duplicate_key", data); msg == "duplicate key age at position 2 (first declared at 0)" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("invalid_key", nil); msg != "X:invalid_key" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
