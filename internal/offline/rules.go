package offline

// The rule table is evaluated top to bottom; ordering is part of the
// contract (e.g. "rice price" must hit market-price before weather ever
// sees it). Keyword sets mix English with transliterated Hindi/Punjabi
// forms so the same table serves every input language.
var defaultRules = []Rule{
	{
		Name:  "greeting",
		Match: exactOr([]string{"hi", "hello", "namaste"}, "namaste", "hello"),
		Replies: map[string]string{
			"en": "Hello! I am Kisan-Bhai. How can I assist you with your farming today?",
			"hi": "नमस्ते! मैं किसान-भाई हूँ। मैं आज आपकी खेती में कैसे मदद कर सकता हूँ?",
			"pa": "ਸਤਿ ਸ੍ਰੀ ਅਕਾਲ! ਮੈਂ ਕਿਸਾਨ-ਭਾਈ ਹਾਂ। ਅੱਜ ਮੈਂ ਤੁਹਾਡੀ ਖੇਤੀ ਵਿੱਚ ਕਿਵੇਂ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
			"mr": "नमस्कार! मी किसान-भाई आहे. आज मी तुमच्या शेतीमध्ये कशी मदत करू शकतो?",
		},
	},
	{
		Name:  "thanks",
		Match: anyOf("thank", "dhanyawad", "shukriya"),
		Replies: map[string]string{
			"en": "You're welcome! Feel free to ask if you have any more questions.",
			"hi": "आपका स्वागत है! यदि आपके कोई और प्रश्न हैं, तो बेझिझक पूछें।",
			"pa": "ਤੁਹਾਡਾ ਸੁਆਗਤ ਹੈ! ਜੇ ਤੁਹਾਡੇ ਕੋਈ ਹੋਰ ਸਵਾਲ ਹਨ, ਤਾਂ ਬੇਝਿਜਕ ਪੁੱਛੋ।",
			"mr": "तुमचे स्वागत आहे! जर तुमचे आणखी काही प्रश्न असतील तर नक्की विचारा.",
		},
	},
	{
		Name:  "identity",
		Match: anyOf("who are you", "tum kaun ho", "kisan-bhai", "kisan bhai"),
		Replies: map[string]string{
			"en": "I am Kisan-Bhai, your personal AI farming advisor. I can help you with crop diseases, weather forecasts, and market prices.",
			"hi": "मैं किसान-भाई हूँ, आपका व्यक्तिगत एआई (AI) कृषि सलाहकार। मैं आपको फसल की बीमारियों, मौसम, और बाजार के बारे में जानकारी दे सकता हूँ।",
			"pa": "ਮੈਂ ਕਿਸਾਨ-ਭਾਈ ਹਾਂ, ਤੁਹਾਡਾ ਨਿੱਜੀ ਏਅਾਈ (AI) ਖੇਤੀ ਸਲਾਹਕਾਰ। ਮੈਂ ਤੁਹਾਨੂੰ ਫਸਲਾਂ ਦੀਆਂ ਬਿਮਾਰੀਆਂ, ਮੌਸਮ ਅਤੇ ਬਾਜ਼ਾਰ ਬਾਰੇ ਜਾਣਕਾਰੀ ਦੇ ਸਕਦਾ ਹਾਂ।",
			"mr": "मी किसान-भाई आहे, तुमचा वैयक्तिक एआय (AI) कृषी सल्लागार. मी तुम्हाला पिकांचे आजार, हवामान आणि बाजारपेठेबद्दल माहिती देऊ शकतो.",
		},
	},
	{
		Name:  "crop-season",
		Match: allOf(anyOf("crop"), anyOf("season", "plant")),
		Replies: map[string]string{
			"en": "For the current Rabi season, I recommend planting Wheat (HD 2967 variety) or Mustard (Pusa Bold) for optimal yields based on your soil type.",
			"hi": "रबी के मौसम के लिए, मैं उच्च उपज के लिए गेहूं (HD 2967) या सरसों (Pusa Bold) लगाने की सलाह देता हूं।",
			"pa": "ਹਾੜੀ ਦੇ ਮੌਸਮ ਲਈ, ਮੈਂ ਵੱਧ ਝਾੜ ਲਈ ਕਣਕ (HD 2967) ਜਾਂ ਸਰ੍ਹੋਂ (Pusa Bold) ਬੀਜਣ ਦੀ ਸਲਾਹ ਦਿੰਦਾ ਹਾਂ।",
			"mr": "रब्बी हंगामासाठी, मी जास्त उत्पादनासाठी गहू (HD 2967) किंवा मोहरी (Pusa Bold) लावण्याची शिफारस करतो.",
		},
	},
	{
		Name:  "disease-symptom",
		Match: allOf(anyOf("tomato"), anyOf("yellow")),
		Replies: map[string]string{
			"en": "Yellowing tomato leaves often indicate Nitrogen deficiency or early blight. I recommend applying a balanced NPK fertilizer or a basic copper fungicide spray if spots appear.",
			"hi": "टमाटर के पीले पत्ते नाइट्रोजन की कमी या शुरुआती ब्लाइट का संकेत हो सकते हैं। कृपया फफूंदनाशक का छिड़काव करें या यूरिया डालें।",
		},
	},
	{
		Name:  "irrigation",
		Match: anyOf("water", "irrigate", "irrigation"),
		Replies: map[string]string{
			"en": "Soil moisture is currently at 42%. Based on weather forecasts, hold off on watering your wheat crop for the next 3 days as scattered rain is expected.",
			"hi": "मिट्टी की नमी वर्तमान में 42% है। अपनी गेहूं की फसल को अगले 3 दिनों तक पानी न दें क्योंकि बारिश की संभावना है।",
		},
	},
	{
		Name:  "government-scheme",
		Match: anyOf("scheme", "government"),
		Replies: map[string]string{
			"en": "Based on your profile, you are eligible for the 'PM Kisan Samman Nidhi' (₹6,000/year) and the 'PM Fasal Bima Yojana' for crop insurance. Check the Schemes tab for details.",
			"hi": "आप 'पीएम किसान सम्मान निधि' (6,000 रुपये प्रति वर्ष) और 'पीएम फसल बीमा योजना' (फसल बीमा) के लिए पात्र हैं।",
		},
	},
	{
		Name:  "market-price",
		Match: anyOf("rice", "price", "mandi", "rate", "bhav"),
		Replies: map[string]string{
			"en": "Today, the APMC Mandi price for Rice (Paddy) is ₹2,040/qtl, but Direct FPOs are offering ₹2,100/qtl. I strongly recommend selling to the FPO today.",
			"hi": "आज धान (चावल) का मंडी भाव ₹2,040/क्विंटल है, लेकिन FPO ₹2,100/क्विंटल दे रहे हैं। मैं FPO को बेचने की सलाह देता हूं।",
			"pa": "ਅੱਜ ਝੋਨੇ (ਚੌਲ) ਦਾ ਮੰਡੀ ਭਾਅ ₹2,040/ਕੁਇੰਟਲ ਹੈ, ਪਰ FPO ₹2,100/ਕੁਇੰਟਲ ਦੇ ਰਹੇ ਹਨ। ਮੈਂ FPO ਨੂੰ ਵੇਚਣ ਦੀ ਸਲਾਹ ਦਿੰਦਾ ਹਾਂ।",
			"mr": "आज धान (तांदूळ) चा बाजार भाव ₹2,040/क्विंटल आहे, परंतु FPO ₹2,100/क्विंटल देत आहेत. मी FPO ला विकण्याची शिफारस करतो.",
		},
	},
	{
		Name:  "weather",
		Match: anyOf("weather", "forecast", "rain", "baarish", "mausam", "temperature"),
		Replies: map[string]string{
			"en": "Currently, it is 32°C with 65% humidity. Expect partly cloudy skies today with a 40% chance of light showers tomorrow evening.",
			"hi": "आज 65% नमी के साथ 32°C तापमान है। अगले दो दिनों में हल्की बारिश की संभावना है।",
			"pa": "ਅੱਜ 65% ਨਮੀ ਦੇ ਨਾਲ 32°C ਤਾਪਮਾਨ ਹੈ। ਅਗਲੇ ਦੋ ਦਿਨਾਂ ਵਿੱਚ ਹਲਕੀ ਬਾਰਿਸ਼ ਹੋਣ ਦੀ ਸੰਭਾਵਨਾ ਹੈ।",
			"mr": "आज 65% आर्द्रतेसह 32°C तापमान आहे. पुढील दोन दिवसांत हलक्या पावसाची शक्यता आहे.",
		},
	},
}
