package i18n

import "mandi-backend/internal/models"

// messages holds the user-facing strings per language. Error messages returned
// by the API are looked up here so traders see them in their own language.
var messages = map[models.Language]map[string]string{
	models.LanguageMarathi: {
		"title":               "बहुभाषिक मंडी",
		"subtitle":            "स्थानिक व्यापाऱ्यांसाठी भाषिक सेतू",
		"market_rates":        "बाजार भाव",
		"negotiation":         "वाटाघाटी",
		"price_suggestion":    "भाव सुचवणे",
		"ai_assistant":        "AI सहाय्यक",
		"buyer":               "खरेदीदार",
		"seller":              "विक्रेता",
		"error.invalid":       "विनंती अवैध आहे. कृपया मजकूर तपासा.",
		"error.empty_text":    "भाषांतरासाठी मजकूर रिकामा आहे.",
		"error.ai_service":    "AI सेवा सध्या उपलब्ध नाही. कृपया पुन्हा प्रयत्न करा.",
		"error.not_found":     "नोंद सापडली नाही.",
		"error.rate_limited":  "खूप विनंत्या. कृपया थोड्या वेळाने प्रयत्न करा.",
		"error.internal":      "अनपेक्षित त्रुटी आली.",
		"error.deal_closed":   "ही वाटाघाटी आधीच पूर्ण झाली आहे.",
	},
	models.LanguageHindi: {
		"title":               "बहुभाषी मंडी",
		"subtitle":            "स्थानीय व्यापारियों के लिए भाषाई सेतु",
		"market_rates":        "बाजार भाव",
		"negotiation":         "बातचीत",
		"price_suggestion":    "भाव सुझाव",
		"ai_assistant":        "AI सहायक",
		"buyer":               "खरीदार",
		"seller":              "विक्रेता",
		"error.invalid":       "अनुरोध अमान्य है। कृपया पाठ जांचें।",
		"error.empty_text":    "अनुवाद के लिए पाठ खाली है।",
		"error.ai_service":    "AI सेवा अभी उपलब्ध नहीं है। कृपया फिर से प्रयास करें।",
		"error.not_found":     "रिकॉर्ड नहीं मिला।",
		"error.rate_limited":  "बहुत अधिक अनुरोध। कृपया थोड़ी देर बाद प्रयास करें।",
		"error.internal":      "अप्रत्याशित त्रुटि हुई।",
		"error.deal_closed":   "यह बातचीत पहले ही पूरी हो चुकी है।",
	},
	models.LanguageEnglish: {
		"title":               "The Multilingual Mandi",
		"subtitle":            "Linguistic bridge for local traders",
		"market_rates":        "Market Rates",
		"negotiation":         "Negotiation",
		"price_suggestion":    "Price Suggestion",
		"ai_assistant":        "AI Assistant",
		"buyer":               "Buyer",
		"seller":              "Seller",
		"error.invalid":       "The request is invalid. Please check your input.",
		"error.empty_text":    "There is no text to translate.",
		"error.ai_service":    "The AI service is unavailable right now. Please try again.",
		"error.not_found":     "Record not found.",
		"error.rate_limited":  "Too many requests. Please try again shortly.",
		"error.internal":      "An unexpected error occurred.",
		"error.deal_closed":   "This negotiation has already been completed.",
	},
}

// T returns the message for key in lang, falling back to English, then to the
// key itself when no translation exists.
func T(lang models.Language, key string) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[models.LanguageEnglish][key]; ok {
		return msg
	}
	return key
}
