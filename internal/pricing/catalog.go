package pricing

import (
	"github.com/alexanderramin/quoteforge/internal/domain"
)

type FeatureCategory string

const (
	CategoryCore         FeatureCategory = "Core"
	CategoryCommerce     FeatureCategory = "Commerce"
	CategoryEngagement   FeatureCategory = "Engagement"
	CategoryContent      FeatureCategory = "Content"
	CategoryIntegrations FeatureCategory = "Integrations"
	CategoryData         FeatureCategory = "Data"
	CategoryAI           FeatureCategory = "AI"
)

// Feature is a catalog entry: a selectable capability with a per-role
// effort vector and a default client-facing price.
type Feature struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category FeatureCategory `json:"category"`
	Hours    RoleHours       `json:"hours"`
	Cost     float64         `json:"cost"`
}

// IsAI reports whether the feature belongs to the AI category.
func (f Feature) IsAI() bool { return f.Category == CategoryAI }

func feature(id, name string, cat FeatureCategory, cost float64, fe, be, de, qa, pm float64) Feature {
	return Feature{ID: id, Name: name, Category: cat, Cost: cost, Hours: roleHours(fe, be, de, qa, pm)}
}

// FeatureCatalog is the static registry in display order.
var FeatureCatalog = []Feature{
	feature("user-auth", "User Authentication", CategoryCore, 3000, 16, 24, 6, 8, 4),
	feature("user-profiles", "User Profiles", CategoryCore, 2000, 16, 12, 8, 6, 3),
	feature("admin-dashboard", "Admin Dashboard", CategoryCore, 6000, 40, 32, 12, 12, 8),
	feature("roles-permissions", "Roles & Permissions", CategoryCore, 4000, 12, 28, 4, 10, 6),
	feature("search", "Search & Filtering", CategoryCore, 3000, 16, 20, 4, 8, 3),
	feature("contact-form", "Contact Form", CategoryCore, 800, 6, 4, 2, 2, 1),
	feature("multi-language", "Multi-language Support", CategoryCore, 3500, 20, 10, 4, 8, 4),

	feature("payments", "Payment Processing", CategoryCommerce, 5500, 20, 36, 6, 14, 6),
	feature("subscriptions", "Subscriptions & Billing", CategoryCommerce, 6500, 18, 40, 6, 14, 8),
	feature("shopping-cart", "Shopping Cart & Checkout", CategoryCommerce, 5000, 28, 28, 10, 12, 5),
	feature("booking", "Booking & Scheduling", CategoryCommerce, 5000, 24, 30, 8, 12, 6),

	feature("push-notifications", "Push Notifications", CategoryEngagement, 2000, 6, 14, 2, 6, 2),
	feature("chat", "In-app Chat", CategoryEngagement, 6000, 30, 36, 8, 14, 6),
	feature("reviews-ratings", "Reviews & Ratings", CategoryEngagement, 2000, 12, 12, 4, 6, 2),
	feature("social-login", "Social Login", CategoryEngagement, 1500, 8, 10, 2, 4, 2),

	feature("cms", "Content Management", CategoryContent, 3500, 18, 20, 6, 8, 4),
	feature("blog", "Blog", CategoryContent, 1800, 12, 8, 6, 4, 2),

	feature("api-integrations", "Third-party Integrations", CategoryIntegrations, 5000, 8, 36, 0, 12, 6),
	feature("maps", "Maps & Geolocation", CategoryIntegrations, 3000, 18, 14, 4, 8, 3),

	feature("analytics", "Analytics Dashboard", CategoryData, 4500, 24, 24, 8, 8, 4),
	feature("reporting", "Custom Reports & Export", CategoryData, 4500, 20, 28, 6, 10, 5),
	feature("file-uploads", "File Uploads & Media", CategoryData, 2500, 12, 18, 4, 6, 2),

	feature("ai-chatbot", "AI Chatbot", CategoryAI, 9000, 24, 48, 8, 16, 8),
	feature("ai-recommendations", "AI Recommendations", CategoryAI, 9500, 12, 52, 4, 14, 8),
	feature("ai-content-generation", "AI Content Generation", CategoryAI, 8000, 18, 40, 6, 12, 6),
	feature("ai-image-recognition", "AI Image Recognition", CategoryAI, 10000, 12, 56, 4, 16, 8),
}

var catalogIndex = func() map[string]Feature {
	idx := make(map[string]Feature, len(FeatureCatalog))
	for _, f := range FeatureCatalog {
		idx[f.ID] = f
	}
	return idx
}()

// LookupFeature returns the catalog entry for id.
func LookupFeature(id string) (Feature, bool) {
	f, ok := catalogIndex[id]
	return f, ok
}

// HasAIFeature reports whether any selected feature is in the AI category.
func HasAIFeature(ids []string) bool {
	for _, id := range ids {
		if f, ok := catalogIndex[id]; ok && f.IsAI() {
			return true
		}
	}
	return false
}

func catalogCosts() map[string]float64 {
	costs := make(map[string]float64, len(FeatureCatalog))
	for _, f := range FeatureCatalog {
		costs[f.ID] = f.Cost
	}
	return costs
}

// isAIProject is the risk signal shared by the cost and warning rules.
func isAIProject(in domain.PricingInputs) bool {
	return in.IdeaType == domain.IdeaAIPoweredProduct || HasAIFeature(in.SelectedFeatures)
}
