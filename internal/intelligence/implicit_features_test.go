package intelligence

import (
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInferImplicitFeatures_StaticBasicWebsite(t *testing.T) {
	ctx := RuleContext{
		ProjectType: domain.AIWebsite,
		Complexity:  domain.ComplexityBasic,
		Platforms:   []domain.Platform{domain.PlatformWeb},
	}
	features, applied := InferImplicitFeatures(ctx, []string{"user-auth", "blog"}, ImplicitRules)

	assert.Equal(t, []string{"blog", "cms", "contact-form"}, features)
	assert.Equal(t, []string{"accounts", "static-basic-website"}, applied)
}

func TestInferImplicitFeatures_MediumWebsiteKeepsAccounts(t *testing.T) {
	ctx := RuleContext{ProjectType: domain.AIWebsite, Complexity: domain.ComplexityMedium}
	features, applied := InferImplicitFeatures(ctx, nil, ImplicitRules)

	assert.Equal(t, []string{"admin-dashboard", "user-auth"}, features)
	assert.Equal(t, []string{"accounts", "back-office"}, applied)
}

func TestInferImplicitFeatures_Marketplace(t *testing.T) {
	ctx := RuleContext{
		ProjectType: domain.AIMarketplace,
		Complexity:  domain.ComplexityMedium,
		Platforms:   []domain.Platform{domain.PlatformIOS, domain.PlatformAndroid},
	}
	features, applied := InferImplicitFeatures(ctx, []string{"chat"}, ImplicitRules)

	assert.Equal(t, []string{
		"admin-dashboard", "chat", "payments", "push-notifications",
		"reviews-ratings", "search", "user-auth", "user-profiles",
	}, features)
	assert.Equal(t, []string{
		"accounts", "profiles", "back-office", "mobile-engagement", "commerce", "marketplace-trust",
	}, applied)
}

func TestInferImplicitFeatures_EnterpriseAdvanced(t *testing.T) {
	ctx := RuleContext{
		ProjectType: domain.AIEnterprise,
		Complexity:  domain.ComplexityAdvanced,
		Platforms:   []domain.Platform{domain.PlatformWeb},
	}
	features, applied := InferImplicitFeatures(ctx, nil, ImplicitRules)

	assert.Equal(t, []string{
		"admin-dashboard", "analytics", "api-integrations", "reporting",
		"roles-permissions", "user-auth", "user-profiles",
	}, features)
	assert.Equal(t, []string{
		"accounts", "profiles", "back-office", "enterprise-governance", "advanced-scale",
	}, applied)
}

func TestInferImplicitFeatures_MobileTypeWithoutPlatforms(t *testing.T) {
	ctx := RuleContext{ProjectType: domain.AIMobileApp, Complexity: domain.ComplexityBasic}
	features, _ := InferImplicitFeatures(ctx, nil, ImplicitRules)

	assert.Contains(t, features, "push-notifications")
	assert.NotContains(t, features, "admin-dashboard")
}

func TestInferImplicitFeatures_Idempotent(t *testing.T) {
	for _, pt := range domain.AIProjectTypes {
		for _, c := range domain.ComplexityLevels {
			ctx := RuleContext{ProjectType: pt, Complexity: c}
			once, _ := InferImplicitFeatures(ctx, []string{"blog", "maps"}, ImplicitRules)
			twice, _ := InferImplicitFeatures(ctx, once, ImplicitRules)
			assert.Equal(t, once, twice, "%s/%s", pt, c)
		}
	}
}

func TestInferImplicitFeatures_RuleOrder(t *testing.T) {
	always := func(RuleContext) bool { return true }
	rules := []ImplicitRule{
		{Name: "add", When: always, Add: []string{"chat"}},
		{Name: "strip", When: always, Remove: []string{"chat"}},
	}
	features, applied := InferImplicitFeatures(RuleContext{}, []string{"blog"}, rules)
	assert.Equal(t, []string{"blog"}, features)
	assert.Equal(t, []string{"add", "strip"}, applied)

	reversed := []ImplicitRule{rules[1], rules[0]}
	features, _ = InferImplicitFeatures(RuleContext{}, []string{"blog"}, reversed)
	assert.Equal(t, []string{"blog", "chat"}, features)
}

func TestImplicitRules_ReferenceCatalogFeatures(t *testing.T) {
	for _, r := range ImplicitRules {
		for _, id := range append(append([]string{}, r.Add...), r.Remove...) {
			_, ok := featureKeywords[id]
			assert.True(t, ok, "rule %s references unknown feature %s", r.Name, id)
		}
	}
}
