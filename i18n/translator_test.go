package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg == "required" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "Required" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_ParamSubstitution(t *testing.T) {
	msg := T("invalid_type", map[string]string{"expected": "number", "received": "string"})
	if msg != "Expected number, received string" {
		t.Fatalf("unexpected message: %q", msg)
	}

	// unresolved placeholders stay verbatim
	msg = T("too_small", nil)
	if msg != "Too small: expected at least {minimum}" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code passthrough, got %q", msg)
	}
}
