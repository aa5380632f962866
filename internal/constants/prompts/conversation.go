package prompts

import "fmt"

var (
	ADVISOR_PROMPT = SYS_PROMPT{
		Intent:         "Identity",
		CurrentVersion: 0.1,
		Items: map[float32]PromptDefinition{
			0.1: {
				Version: 0.1,
				Content: `You are Kisan-Bhai, the friendly AI Farmer advisor. %s
				Help with diseases, irrigation, and crop planning.`,
			},
		},
	}
)

var languageNames = map[string]string{
	"hi": "Hindi (हिन्दी)",
	"pa": "Punjabi (ਪੰਜਾਬੀ)",
	"mr": "Marathi (मराठी)",
	"en": "English",
}

// LanguageContext renders the reply-language directive appended to the
// system prompt. Unknown codes fall back to English.
func LanguageContext(lang string) string {
	name, ok := languageNames[lang]
	if !ok {
		name = "English"
	}
	return fmt.Sprintf("The user's preferred language is %s. Please respond in that language.", name)
}

// SystemInstruction renders the full system prompt for a profile language.
func SystemInstruction(lang string) string {
	return fmt.Sprintf(ADVISOR_PROMPT.GetCurrentPrompt().Content, LanguageContext(lang))
}

// WelcomeMessages seed an empty conversation, keyed by profile language.
var WelcomeMessages = map[string]string{
	"en": "Namaste! I am Kisan-Bhai, your Digital Farmer Advisor. How can I help your fields flourish today?",
	"hi": "नमस्ते! मैं किसान-भाई हूँ, आपका डिजिटल किसान सलाहकार। आज मैं आपकी खेती में कैसे मदद कर सकता हूँ?",
	"pa": "ਸਤਿ ਸ੍ਰੀ ਅਕਾਲ! ਮੈਂ ਕਿਸਾਨ-ਭਾਈ ਹਾਂ, ਤੁਹਾਡਾ ਡਿਜੀਟਲ ਕਿਸਾਨ ਸਲਾਹਕਾਰ। ਅੱਜ ਮੈਂ ਤੁਹਾਡੀ ਖੇਤੀ ਵਿੱਚ ਕਿਵੇਂ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
	"mr": "नमस्कार! मी किसान-भाई आहे, तुमचा डिजिटल शेतकरी सल्लागार. आज मी तुमच्या शेतीमध्ये कशी मदत करू शकतो?",
}

// WelcomeMessage returns the greeting for lang, or the English one.
func WelcomeMessage(lang string) string {
	if msg, ok := WelcomeMessages[lang]; ok {
		return msg
	}
	return WelcomeMessages["en"]
}

// Offline fallback served when the gateway is unreachable. Hindi profiles
// get the Hindi wording; every other language gets English.
const (
	FallbackApologyHI = "मैं अभी ऑफ़लाइन मोड में हूँ या नेटवर्क त्रुटि है। लेकिन मैं मौसम, आज के बाज़ार भाव (जैसे- चावल), या फसल बोने की सलाह के बारे में सवालों के जवाब दे सकता हूँ।"
	FallbackApologyEN = "I am currently operating in offline mode due to an API quota error. However, you can still ask me about today's market prices (like Rice), crop planting seasons, or weather forecasts!"
)

// FallbackApology picks the network-failure reply for a language.
func FallbackApology(lang string) string {
	if lang == "hi" {
		return FallbackApologyHI
	}
	return FallbackApologyEN
}
