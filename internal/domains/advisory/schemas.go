package advisory

import "github.com/agrovoice/kisanbhai/pkg/advisor"

// Reply schemas handed to the model provider. Field names line up with the
// declared shapes in internal/types; decoding tolerates anything missing.

var diseaseSchema = advisor.Object(
	advisor.Require(advisor.Str("diseaseName")),
	advisor.Require(advisor.Str("severity")),
	advisor.Str("organicSteps"),
	advisor.Str("chemicalSteps"),
)

var weatherSchema = advisor.Object(
	advisor.Obj("current",
		advisor.Num("temp"),
		advisor.Num("humidity"),
		advisor.Str("condition"),
		advisor.Num("wind"),
		advisor.Str("uv"),
	),
	advisor.ObjArray("forecast",
		advisor.Str("day"),
		advisor.Num("high"),
		advisor.Num("low"),
		advisor.Str("condition"),
	),
)

var proactiveAlertsSchema = advisor.Object(
	advisor.ObjArray("alerts",
		advisor.Str("title"),
		advisor.Str("type"),
		advisor.Str("description"),
		advisor.Str("urgency"),
	),
)

var fertilizerSchema = advisor.Object(
	advisor.Str("type"),
	advisor.Str("quantity"),
	advisor.Str("timing"),
	advisor.Str("applicationMethod"),
	advisor.Str("precautions"),
)

var irrigationSchema = advisor.Object(
	advisor.Str("waterAmount"),
	advisor.Str("duration"),
	advisor.Str("urgency"),
	advisor.StrArray("tips"),
)

var rainCheckSchema = advisor.Object(
	advisor.Require(advisor.Bool("isRainExpected")),
	advisor.Str("intensity"),
	advisor.Str("timing"),
	advisor.Str("recommendation"),
)

var weatherAlertsSchema = advisor.Object(
	advisor.ObjArray("alerts",
		advisor.Str("title"),
		advisor.Str("severity"),
		advisor.Str("description"),
		advisor.Str("action"),
	),
)

var growthSchema = advisor.Object(
	advisor.Str("stage"),
	advisor.Str("health"),
	advisor.Str("analysis"),
	advisor.Str("nextSteps"),
)

var schemesSchema = advisor.Object(
	advisor.ObjArray("schemes",
		advisor.Str("name"),
		advisor.Str("category"),
		advisor.Str("description"),
		advisor.Str("eligibility"),
		advisor.Str("benefits"),
	),
)

var cropsSchema = advisor.Object(
	advisor.ObjArray("crops",
		advisor.Str("name"),
		advisor.Str("risk"),
		advisor.Str("profitPotential"),
		advisor.Str("waterNeed"),
	),
)

var weatherTipsSchema = advisor.Object(
	advisor.StrArray("tips"),
)
