package types

// Declared reply shapes for the advisory gateway. The field sets are the
// public contract of each operation: whichever model provider answers, the
// reply is parsed into exactly these fields, and a missing field decodes to
// its zero value rather than an error.

type DiseaseReport struct {
	DiseaseName   string `json:"diseaseName"`
	Severity      string `json:"severity"`
	OrganicSteps  string `json:"organicSteps"`
	ChemicalSteps string `json:"chemicalSteps"`
}

type IrrigationAdvice struct {
	WaterAmount string   `json:"waterAmount"`
	Duration    string   `json:"duration"`
	Urgency     string   `json:"urgency"`
	Tips        []string `json:"tips"`
}

type FertilizerAdvice struct {
	Type              string `json:"type"`
	Quantity          string `json:"quantity"`
	Timing            string `json:"timing"`
	ApplicationMethod string `json:"applicationMethod"`
	Precautions       string `json:"precautions"`
}

type CropOption struct {
	Name            string `json:"name"`
	Risk            string `json:"risk"`
	ProfitPotential string `json:"profitPotential"`
	WaterNeed       string `json:"waterNeed"`
}

type CropRecommendations struct {
	Crops []CropOption `json:"crops"`
}

type CurrentConditions struct {
	Temp      float64 `json:"temp"`
	Humidity  float64 `json:"humidity"`
	Condition string  `json:"condition"`
	Wind      float64 `json:"wind"`
	UV        string  `json:"uv"`
}

type ForecastDay struct {
	Day       string  `json:"day"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Condition string  `json:"condition"`
}

type WeatherReport struct {
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
}

type RainCheck struct {
	IsRainExpected bool   `json:"isRainExpected"`
	Intensity      string `json:"intensity"`
	Timing         string `json:"timing"`
	Recommendation string `json:"recommendation"`
}

type WeatherAlert struct {
	Title       string `json:"title"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type ProactiveAlert struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

type Scheme struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`
}

type GrowthReport struct {
	Stage     string `json:"stage"`
	Health    string `json:"health"`
	Analysis  string `json:"analysis"`
	NextSteps string `json:"nextSteps"`
}
