package advisory

import "github.com/agrovoice/kisanbhai/internal/types"

// Fixed demonstration payloads for demo-wired operations. Wording carries
// Hindi variants; every other language gets the English strings.

func hiOr(lang, hi, en string) string {
	if lang == "hi" {
		return hi
	}
	return en
}

func demoWeather(lang string) *types.WeatherReport {
	return &types.WeatherReport{
		Current: types.CurrentConditions{
			Temp:      15,
			Humidity:  45,
			Condition: hiOr(lang, "साफ", "Clear"),
			Wind:      8,
			UV:        "Low",
		},
		Forecast: []types.ForecastDay{
			{Day: hiOr(lang, "आज", "Today"), High: 34, Low: 22, Condition: hiOr(lang, "धूप", "Sunny")},
			{Day: hiOr(lang, "कल", "Tomorrow"), High: 33, Low: 21, Condition: hiOr(lang, "बादल", "Cloudy")},
			{Day: hiOr(lang, "बुधवार", "Wed"), High: 31, Low: 20, Condition: hiOr(lang, "बारिश", "Rain")},
			{Day: hiOr(lang, "गुरुवार", "Thu"), High: 32, Low: 19, Condition: hiOr(lang, "साफ", "Clear")},
			{Day: hiOr(lang, "शुक्रवार", "Fri"), High: 35, Low: 23, Condition: hiOr(lang, "धूप", "Sunny")},
		},
	}
}

func demoFertilizer(lang string) *types.FertilizerAdvice {
	return &types.FertilizerAdvice{
		Type:              hiOr(lang, "यूरिया और डीएपी (DAP) मिश्रण", "Urea & DAP Mixture"),
		Quantity:          hiOr(lang, "50 किलो प्रति एकड़", "50 kg per acre"),
		Timing:            hiOr(lang, "सुबह या शाम के समय, मिट्टी में नमी होने पर", "Morning or evening, when soil has proper moisture"),
		ApplicationMethod: hiOr(lang, "छिड़काव विधि (Broadcasting) या जड़ के पास देना (Band Placement)", "Broadcasting or Band Placement near roots"),
		Precautions:       hiOr(lang, "समान रूप से छिड़काव करें, तेज धूप में प्रयोग से बचें, और दस्ताने पहनें।", "Apply evenly, avoid application in strong sunlight, and wear gloves."),
	}
}

func demoSchemes(lang string) []types.Scheme {
	return []types.Scheme{
		{
			Name:        hiOr(lang, "पीएम किसान सम्मान निधि", "PM Kisan Samman Nidhi"),
			Category:    "Financial Support",
			Description: hiOr(lang, "किसानों को प्रति वर्ष ₹6000 की वित्तीय सहायता।", "Financial assistance of ₹6000 per year to farmers."),
			Eligibility: hiOr(lang, "सभी छोटे और सीमांत किसान परिवार", "All small and marginal farming families"),
			Benefits:    "₹6000 / year",
		},
		{
			Name:        hiOr(lang, "पीएम फसल बीमा योजना", "PM Fasal Bima Yojana"),
			Category:    "Insurance",
			Description: hiOr(lang, "प्राकृतिक आपदाओं से फसल के नुकसान के लिए बीमा कवर।", "Insurance cover for crop loss due to natural calamities."),
			Eligibility: hiOr(lang, "अधिसूचित क्षेत्र में फसल उगाने वाले किसान", "Farmers growing crops in notified areas"),
			Benefits:    "Crop Loss Coverage",
		},
		{
			Name:        hiOr(lang, "कृषि अवसंरचना कोष", "Agriculture Infrastructure Fund"),
			Category:    "Infrastructure",
			Description: hiOr(lang, "फसल कटाई के बाद के प्रबंधन के लिए मध्यम लंबी अवधि के ऋण।", "Medium-long term debt financing facility for post-harvest management."),
			Eligibility: hiOr(lang, "प्राथमिक कृषि ऋण समितियां (PACS), विपणन सहकारी समितियां", "PACS, Marketing Cooperative Societies"),
			Benefits:    "3% Interest Subvention",
		},
		{
			Name:        hiOr(lang, "मृदा स्वास्थ्य कार्ड योजना", "Soil Health Card Scheme"),
			Category:    "Soil Health",
			Description: hiOr(lang, "मिट्टी की पोषक स्थिति का आकलन करने के लिए।", "To assess the nutrient status of the soil."),
			Eligibility: hiOr(lang, "सभी किसान", "All Farmers"),
			Benefits:    "Free Soil Testing",
		},
	}
}

func demoCrops(lang string) *types.CropRecommendations {
	return &types.CropRecommendations{
		Crops: []types.CropOption{
			{
				Name:            hiOr(lang, "गेहूं (एचडी 2967)", "Wheat (HD 2967)"),
				Risk:            hiOr(lang, "मध्यम", "Medium"),
				ProfitPotential: hiOr(lang, "उच्च", "High"),
				WaterNeed:       hiOr(lang, "मध्यम (3-4 सिंचाई)", "Med (3-4 irrigations)"),
			},
			{
				Name:            hiOr(lang, "चना (देसी)", "Chickpea (Desi)"),
				Risk:            hiOr(lang, "कम", "Low"),
				ProfitPotential: hiOr(lang, "मध्यम", "Medium"),
				WaterNeed:       hiOr(lang, "बहुत कम (1-2 सिंचाई)", "Low (1-2 irrigations)"),
			},
			{
				Name:            hiOr(lang, "सरसों (पूसा बोल्ड)", "Mustard (Pusa Bold)"),
				Risk:            hiOr(lang, "कम", "Low"),
				ProfitPotential: hiOr(lang, "उच्च", "High"),
				WaterNeed:       hiOr(lang, "कम (2 सिंचाई)", "Low (2 irrigations)"),
			},
			{
				Name:            hiOr(lang, "लहसुन", "Garlic"),
				Risk:            hiOr(lang, "उच्च (बाजार जोखिम)", "High (Market Volatile)"),
				ProfitPotential: hiOr(lang, "बहुत उच्च", "Very High"),
				WaterNeed:       hiOr(lang, "उच्च", "High"),
			},
		},
	}
}
