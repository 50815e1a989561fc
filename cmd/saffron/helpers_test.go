package main

import "testing"

func TestParseHeader(t *testing.T) {
	h, err := parseHeader("Authorization: Bearer abc:def")
	if err != nil {
		t.Fatalf("parseHeader failed: %v", err)
	}
	if h.Name != "Authorization" || h.Value != "Bearer abc:def" {
		t.Errorf("header = %+v", h)
	}

	for _, bad := range []string{"NoColon", ": empty name"} {
		if _, err := parseHeader(bad); err == nil {
			t.Errorf("parseHeader(%q) should fail", bad)
		}
	}
}

func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue("host=api.test=prod")
	if err != nil {
		t.Fatalf("parseKeyValue failed: %v", err)
	}
	if key != "host" || value != "api.test=prod" {
		t.Errorf("pair = %q, %q", key, value)
	}

	if _, _, err := parseKeyValue("noequals"); err == nil {
		t.Error("parseKeyValue without '=' should fail")
	}
	if _, _, err := parseKeyValue("=value"); err == nil {
		t.Error("parseKeyValue with empty key should fail")
	}

	// Empty value is allowed, it clears a variable.
	if _, value, err := parseKeyValue("key="); err != nil || value != "" {
		t.Errorf("parseKeyValue(\"key=\") = %q, %v", value, err)
	}
}

func TestReadUIMode(t *testing.T) {
	for input, want := range map[string]uiMode{
		"":     uiModeAuto,
		"auto": uiModeAuto,
		"ON":   uiModeOn,
		"off":  uiModeOff,
	} {
		got, err := readUIMode(input)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v, want %q", input, got, err, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("readUIMode(\"sometimes\") should fail")
	}
}
