package domain

type AIProjectType string

const (
	AIWebsite      AIProjectType = "website"
	AIEcommerce    AIProjectType = "ecommerce"
	AIMobileApp    AIProjectType = "mobile_app"
	AIWebAndMobile AIProjectType = "web_and_mobile"
	AISaaS         AIProjectType = "saas"
	AIMarketplace  AIProjectType = "marketplace"
	AIEnterprise   AIProjectType = "enterprise"
	AIProduct      AIProjectType = "ai_product"
)

var AIProjectTypes = []AIProjectType{
	AIWebsite, AIEcommerce, AIMobileApp, AIWebAndMobile,
	AISaaS, AIMarketplace, AIEnterprise, AIProduct,
}

func (t AIProjectType) Valid() bool { return contains(AIProjectTypes, t) }

type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

type AnalysisSource string

const (
	AnalysisLLM       AnalysisSource = "llm"
	AnalysisHeuristic AnalysisSource = "heuristic"
)

// AIAnalysis is the structured reading of a free-text product idea.
// Field names follow the JSON contract the analyzer model is prompted with.
type AIAnalysis struct {
	ProjectType      AIProjectType   `json:"project_type"`
	Platforms        []Platform      `json:"platforms"`
	RequiredFeatures []string        `json:"required_features"`
	ComplexityLevel  ComplexityLevel `json:"complexity_level,omitempty"`
	Summary          string          `json:"summary,omitempty"`
	TargetAudience   string          `json:"target_audience,omitempty"`
	Confidence       float64         `json:"confidence"`
	Source           AnalysisSource  `json:"source"`
}

// HasPlatform reports whether p was detected.
func (a AIAnalysis) HasPlatform(p Platform) bool {
	return contains(a.Platforms, p)
}
