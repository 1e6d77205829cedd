package intelligence

import (
	"sort"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

// RuleContext is what implicit feature rules may inspect.
type RuleContext struct {
	ProjectType domain.AIProjectType
	Complexity  domain.ComplexityLevel
	Platforms   []domain.Platform
}

func (c RuleContext) is(types ...domain.AIProjectType) bool {
	for _, t := range types {
		if c.ProjectType == t {
			return true
		}
	}
	return false
}

func (c RuleContext) hasMobile() bool {
	for _, p := range c.Platforms {
		if p == domain.PlatformIOS || p == domain.PlatformAndroid {
			return true
		}
	}
	return c.is(domain.AIMobileApp, domain.AIWebAndMobile)
}

func (c RuleContext) staticSite() bool {
	return c.ProjectType == domain.AIWebsite &&
		(c.Complexity == domain.ComplexityBasic || c.Complexity == domain.ComplexityNone)
}

// ImplicitRule adds features free-text extraction tends to omit, or strips
// defaults that do not apply.
type ImplicitRule struct {
	Name   string
	When   func(RuleContext) bool
	Add    []string
	Remove []string
}

// ImplicitRules are applied in this order; later rules see earlier results.
var ImplicitRules = []ImplicitRule{
	{
		Name: "accounts",
		When: func(RuleContext) bool { return true },
		Add:  []string{"user-auth"},
	},
	{
		Name: "profiles",
		When: func(c RuleContext) bool { return c.ProjectType != domain.AIWebsite },
		Add:  []string{"user-profiles"},
	},
	{
		Name: "back-office",
		When: func(c RuleContext) bool {
			return c.Complexity == domain.ComplexityMedium || c.Complexity == domain.ComplexityAdvanced ||
				c.is(domain.AIEcommerce, domain.AISaaS, domain.AIMarketplace, domain.AIEnterprise, domain.AIProduct)
		},
		Add: []string{"admin-dashboard"},
	},
	{
		Name: "mobile-engagement",
		When: RuleContext.hasMobile,
		Add:  []string{"push-notifications"},
	},
	{
		Name: "commerce",
		When: func(c RuleContext) bool { return c.is(domain.AIEcommerce, domain.AIMarketplace) },
		Add:  []string{"payments", "search"},
	},
	{
		Name: "storefront",
		When: func(c RuleContext) bool { return c.is(domain.AIEcommerce) },
		Add:  []string{"shopping-cart"},
	},
	{
		Name: "marketplace-trust",
		When: func(c RuleContext) bool { return c.is(domain.AIMarketplace) },
		Add:  []string{"reviews-ratings", "chat"},
	},
	{
		Name: "saas-billing",
		When: func(c RuleContext) bool { return c.is(domain.AISaaS) },
		Add:  []string{"subscriptions", "analytics"},
	},
	{
		Name: "enterprise-governance",
		When: func(c RuleContext) bool { return c.is(domain.AIEnterprise) },
		Add:  []string{"roles-permissions", "reporting", "api-integrations"},
	},
	{
		Name: "ai-core",
		When: func(c RuleContext) bool { return c.is(domain.AIProduct) },
		Add:  []string{"ai-chatbot"},
	},
	{
		Name: "advanced-scale",
		When: func(c RuleContext) bool { return c.Complexity == domain.ComplexityAdvanced },
		Add:  []string{"analytics", "api-integrations"},
	},
	{
		Name:   "static-basic-website",
		When:   RuleContext.staticSite,
		Remove: []string{"user-auth", "user-profiles", "admin-dashboard", "push-notifications"},
		Add:    []string{"contact-form", "cms"},
	},
}

// InferImplicitFeatures applies rules to the extracted feature ids and
// returns the sorted result with the names of the rules that fired.
func InferImplicitFeatures(ctx RuleContext, extracted []string, rules []ImplicitRule) (features, applied []string) {
	set := make(map[string]bool, len(extracted))
	for _, id := range domain.NormalizeFeatureIDs(extracted) {
		set[id] = true
	}

	for _, r := range rules {
		if !r.When(ctx) {
			continue
		}
		applied = append(applied, r.Name)
		for _, id := range r.Add {
			set[id] = true
		}
		for _, id := range r.Remove {
			delete(set, id)
		}
	}

	features = make([]string, 0, len(set))
	for id := range set {
		features = append(features, id)
	}
	sort.Strings(features)
	return features, applied
}
