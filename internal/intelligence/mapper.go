package intelligence

import (
	"github.com/alexanderramin/quoteforge/internal/domain"
)

// MappingResult is a priced-ready reading of an AI analysis.
type MappingResult struct {
	Inputs       domain.PricingInputs `json:"inputs"`
	Extracted    []string             `json:"extracted"`
	Unmatched    []string             `json:"unmatched"`
	AppliedRules []string             `json:"appliedRules"`
}

type ideaFormat struct {
	idea   domain.IdeaType
	format domain.ProductFormat
}

var projectTypeMapping = map[domain.AIProjectType]ideaFormat{
	domain.AIWebsite:      {domain.IdeaBusinessWebsite, domain.FormatWebsite},
	domain.AIEcommerce:    {domain.IdeaStartupProduct, domain.FormatWebsite},
	domain.AIMobileApp:    {domain.IdeaMobileApp, domain.FormatMobileApp},
	domain.AIWebAndMobile: {domain.IdeaWebsiteMobileApp, domain.FormatWebsiteAndApp},
	domain.AISaaS:         {domain.IdeaStartupProduct, domain.FormatWebsite},
	domain.AIMarketplace:  {domain.IdeaStartupProduct, domain.FormatWebsiteAndApp},
	domain.AIEnterprise:   {domain.IdeaEnterpriseSoftware, domain.FormatFullEcosystem},
	domain.AIProduct:      {domain.IdeaAIPoweredProduct, domain.FormatWebsite},
}

// MapAnalysisToInputs translates an analysis into engine inputs. Unknown
// project types price as a startup product.
func MapAnalysisToInputs(a domain.AIAnalysis) MappingResult {
	mapped, ok := projectTypeMapping[a.ProjectType]
	if !ok {
		mapped = ideaFormat{domain.IdeaStartupProduct, domain.FormatWebsite}
	}

	extracted, unmatched := NormalizeFeatures(a.RequiredFeatures)
	features, applied := InferImplicitFeatures(RuleContext{
		ProjectType: a.ProjectType,
		Complexity:  a.ComplexityLevel,
		Platforms:   a.Platforms,
	}, extracted, ImplicitRules)

	return MappingResult{
		Inputs: domain.PricingInputs{
			IdeaType:         mapped.idea,
			ProductFormat:    mapped.format,
			TechStack:        stackForPlatforms(a),
			SelectedFeatures: features,
			DeliverySpeed:    speedForComplexity(a.ComplexityLevel),
			SupportDuration:  supportFor(a.ProjectType, a.ComplexityLevel),
			ComplexityLevel:  a.ComplexityLevel,
		},
		Extracted:    domain.NormalizeFeatureIDs(extracted),
		Unmatched:    unmatched,
		AppliedRules: applied,
	}
}

func stackForPlatforms(a domain.AIAnalysis) domain.TechStack {
	ios, android := a.HasPlatform(domain.PlatformIOS), a.HasPlatform(domain.PlatformAndroid)
	switch {
	case ios && android:
		return domain.StackReactNative
	case ios:
		return domain.StackNativeIOS
	case android:
		return domain.StackNativeAndroid
	default:
		return domain.StackReactNext
	}
}

// speedForComplexity inverts complexity: simple builds can be rushed.
func speedForComplexity(c domain.ComplexityLevel) domain.DeliverySpeed {
	switch c {
	case domain.ComplexityBasic:
		return domain.SpeedPriority
	case domain.ComplexityMedium:
		return domain.SpeedFaster
	default:
		return domain.SpeedStandard
	}
}

func supportFor(t domain.AIProjectType, c domain.ComplexityLevel) domain.SupportDuration {
	switch {
	case t == domain.AIEnterprise || c == domain.ComplexityAdvanced:
		return domain.Support12Months
	case c == domain.ComplexityMedium || t == domain.AISaaS || t == domain.AIMarketplace || t == domain.AIProduct:
		return domain.Support6Months
	case t == domain.AIWebsite && (c == domain.ComplexityBasic || c == domain.ComplexityNone):
		return domain.SupportNone
	default:
		return domain.Support3Months
	}
}
