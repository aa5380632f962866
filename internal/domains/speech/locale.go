package speech

// Script detection picks the synthesis locale from the text itself, since
// advisory replies may arrive in a different language than the profile
// setting (the model answers in whatever the farmer typed).

func hasDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

func hasGurmukhi(text string) bool {
	for _, r := range text {
		if r >= 0x0A00 && r <= 0x0A7F {
			return true
		}
	}
	return false
}

// DetectLocale resolves the synthesis locale for text spoken to a profile
// with language profileLang. Devanagari text is Hindi unless the profile is
// Marathi; Gurmukhi text, or a Punjabi profile, is Punjabi.
func DetectLocale(text, profileLang string) string {
	switch {
	case hasDevanagari(text):
		if profileLang == "mr" {
			return "mr-IN"
		}
		return "hi-IN"
	case hasGurmukhi(text) || profileLang == "pa":
		return "pa-IN"
	case profileLang == "hi":
		return "hi-IN"
	case profileLang == "mr":
		return "mr-IN"
	default:
		return "en-IN"
	}
}
