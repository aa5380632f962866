package speech

import "testing"

func TestDetectLocale(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		profileLang string
		want        string
	}{
		{"devanagari defaults to hindi", "नमस्ते किसान", "en", "hi-IN"},
		{"devanagari with marathi profile", "नमस्कार शेतकरी", "mr", "mr-IN"},
		{"gurmukhi", "ਸਤਿ ਸ੍ਰੀ ਅਕਾਲ", "en", "pa-IN"},
		{"latin with punjabi profile", "hello farmer", "pa", "pa-IN"},
		{"latin with hindi profile", "hello farmer", "hi", "hi-IN"},
		{"latin with marathi profile", "hello farmer", "mr", "mr-IN"},
		{"latin with english profile", "hello farmer", "en", "en-IN"},
		{"script wins over profile", "नमस्ते", "pa", "hi-IN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetectLocale(c.text, c.profileLang); got != c.want {
				t.Errorf("DetectLocale(%q, %q) = %q, want %q", c.text, c.profileLang, got, c.want)
			}
		})
	}
}

func TestScriptDetection(t *testing.T) {
	if !hasDevanagari("रबी का मौसम") {
		t.Error("expected Devanagari detection")
	}
	if hasDevanagari("plain ascii") {
		t.Error("false Devanagari positive")
	}
	if !hasGurmukhi("ਕਣਕ") {
		t.Error("expected Gurmukhi detection")
	}
	if hasGurmukhi("नमस्ते") {
		t.Error("Devanagari must not read as Gurmukhi")
	}
}
