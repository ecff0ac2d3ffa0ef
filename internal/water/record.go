package water

// Type distinguishes still from sparkling waters.
type Type string

const (
	Still     Type = "still"
	Sparkling Type = "sparkling"
)

// Mineralization buckets a water by dry-residue range.
type Mineralization string

const (
	MineralizationVeryLow Mineralization = "very-low"
	MineralizationLow     Mineralization = "low"
	MineralizationMedium  Mineralization = "medium"
	MineralizationHigh    Mineralization = "high"
	MineralizationUnknown Mineralization = "unknown"
)

// Geography is the coarse geographic zone derived from the region text.
type Geography string

const (
	GeoFrance        Geography = "france"
	GeoMountain      Geography = "mountain"
	GeoAtlantic      Geography = "atlantic"
	GeoMediterranean Geography = "mediterranean"
	GeoOther         Geography = "other"
	GeoUnknown       Geography = "unknown"
)

// Usage tags a water for a consumption context.
type Usage string

const (
	UsageInfants       Usage = "infants"
	UsageChildren      Usage = "children"
	UsageDigestion     Usage = "digestion"
	UsageMineralIntake Usage = "mineral-intake"
	UsageSport         Usage = "sport"
	UsageDaily         Usage = "daily-consumption"
)

// Categories holds the derived categorical buckets of a record.
type Categories struct {
	Mineralization Mineralization `json:"mineralization"`
	Geography      Geography      `json:"geography"`
	Usage          []Usage        `json:"usage"`
}

// Coordinates is an optional latitude/longitude pair.
type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Record is the canonical water record every downstream component operates
// on, independent of the source CSV column naming. Optional measurements are
// pointers so that zero stays distinguishable from "no data"; optional
// descriptive strings are empty when absent. Composition fields are not
// mutated after normalization; only Score is attached later.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type Type   `json:"type"`

	Source    string `json:"source,omitempty"`
	Region    string `json:"region,omitempty"`
	Owner     string `json:"owner,omitempty"`
	Packaging string `json:"packaging,omitempty"`

	Coordinates Coordinates `json:"coordinates"`

	// Physico-chemical
	PH           *float64 `json:"ph,omitempty"`
	Conductivity *float64 `json:"conductivity,omitempty"`
	DryResidue   *float64 `json:"dryResidue,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`

	// Mineral composition, mg/L
	Calcium     *float64 `json:"calcium,omitempty"`
	Magnesium   *float64 `json:"magnesium,omitempty"`
	Sodium      *float64 `json:"sodium,omitempty"`
	Potassium   *float64 `json:"potassium,omitempty"`
	Bicarbonate *float64 `json:"bicarbonate,omitempty"`
	Chloride    *float64 `json:"chloride,omitempty"`
	Sulfate     *float64 `json:"sulfate,omitempty"`
	Nitrate     *float64 `json:"nitrate,omitempty"`
	Fluoride    *float64 `json:"fluoride,omitempty"`
	Silica      *float64 `json:"silica,omitempty"`
	Iron        *float64 `json:"iron,omitempty"`

	// Contaminants
	MicroplasticsPerLiter *float64 `json:"microplasticsPerLiter,omitempty"`
	PFASSum               *float64 `json:"pfasSum,omitempty"`
	TFA                   *float64 `json:"tfa,omitempty"`
	PFOA                  *float64 `json:"pfoa,omitempty"`
	PFOS                  *float64 `json:"pfos,omitempty"`
	RelevantPesticides    *float64 `json:"relevantPesticides,omitempty"`
	NonRelevantPesticides *float64 `json:"nonRelevantPesticides,omitempty"`
	Bisphenols            *float64 `json:"bisphenols,omitempty"`
	Phthalates            *float64 `json:"phthalates,omitempty"`
	DrugResidueStatus     string   `json:"drugResidueStatus,omitempty"`

	// Radioactivity
	AlphaActivity       *float64 `json:"alphaActivity,omitempty"`
	BetaActivity        *float64 `json:"betaActivity,omitempty"`
	Tritium             *float64 `json:"tritium,omitempty"`
	AnnualDoseIndicator *float64 `json:"annualDoseIndicator,omitempty"`
	Uranium             *float64 `json:"uranium,omitempty"`
	Radon               *float64 `json:"radon,omitempty"`

	// Nutrition, % of daily value per liter
	DailyValueCalciumPct   *float64 `json:"dailyValueCalciumPct,omitempty"`
	DailyValueMagnesiumPct *float64 `json:"dailyValueMagnesiumPct,omitempty"`

	// Environment
	CarbonFootprint          *float64 `json:"carbonFootprint,omitempty"`
	WaterFootprint           *float64 `json:"waterFootprint,omitempty"`
	PackagingRecyclingPct    *float64 `json:"packagingRecyclingPct,omitempty"`
	RecognitionYear          *float64 `json:"recognitionYear,omitempty"`
	CompositionVariationCoef *float64 `json:"compositionVariationCoef,omitempty"`

	// Compliance
	EUComplianceStatus       string `json:"euComplianceStatus,omitempty"`
	NationalComplianceStatus string `json:"nationalComplianceStatus,omitempty"`
	MicrobiologicalStability string `json:"microbiologicalStability,omitempty"`
	ControlLab               string `json:"controlLab,omitempty"`
	LastAnalysisDate         string `json:"lastAnalysisDate,omitempty"`

	// Usage metadata
	RecommendedUses          string `json:"recommendedUses,omitempty"`
	UsageRestrictions        string `json:"usageRestrictions,omitempty"`
	MedicalContraindications string `json:"medicalContraindications,omitempty"`
	LabelingMentions         string `json:"labelingMentions,omitempty"`
	Certifications           string `json:"certifications,omitempty"`
	History                  string `json:"history,omitempty"`
	OfficialType             string `json:"officialType,omitempty"`

	Categories Categories `json:"categories"`

	// Score is attached by the scoring engine; zero until computed.
	Score int `json:"score"`
}

// HasUsage reports whether the record carries the given derived usage tag.
func (r *Record) HasUsage(u Usage) bool {
	for _, tag := range r.Categories.Usage {
		if tag == u {
			return true
		}
	}
	return false
}
