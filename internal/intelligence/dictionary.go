package intelligence

import (
	"sort"
	"strings"
	"unicode"

	"github.com/alexanderramin/quoteforge/internal/pricing"
)

// featureKeywords maps catalog ids to the phrases that describe them.
// Keywords are in normalized form: lower case, words separated by one space.
var featureKeywords = map[string][]string{
	"user-auth":             {"login", "log in", "sign in", "sign up", "signup", "authentication", "auth", "register", "registration", "accounts", "user accounts"},
	"user-profiles":         {"profile", "profiles", "user profile", "user profiles"},
	"admin-dashboard":       {"admin", "admin panel", "admin dashboard", "back office", "backoffice", "management console"},
	"roles-permissions":     {"roles", "permissions", "rbac", "access control", "user roles"},
	"search":                {"search", "filter", "filters", "filtering"},
	"contact-form":          {"contact form", "contact us", "inquiry form", "enquiry form", "lead form"},
	"multi-language":        {"multi language", "multilingual", "translation", "translations", "i18n", "localization"},
	"payments":              {"payment", "payments", "stripe", "paypal", "pay online", "online payments"},
	"subscriptions":         {"subscription", "subscriptions", "recurring billing", "billing", "pricing plans"},
	"shopping-cart":         {"cart", "shopping cart", "checkout", "basket", "product catalog"},
	"booking":               {"booking", "bookings", "appointment", "appointments", "scheduling", "reservation", "reservations"},
	"push-notifications":    {"push", "push notification", "push notifications", "notifications", "alerts"},
	"chat":                  {"chat", "messaging", "messages", "inbox", "direct messages"},
	"reviews-ratings":       {"review", "reviews", "rating", "ratings", "testimonials"},
	"social-login":          {"social login", "google login", "facebook login", "sign in with google", "oauth"},
	"cms":                   {"cms", "content management", "editable content", "page editor"},
	"blog":                  {"blog", "articles", "news section"},
	"api-integrations":      {"integration", "integrations", "api", "apis", "third party", "crm", "erp", "webhooks"},
	"maps":                  {"map", "maps", "geolocation", "gps", "location tracking"},
	"analytics":             {"analytics", "metrics", "insights", "statistics", "kpi", "kpis"},
	"reporting":             {"report", "reports", "reporting", "export", "exports"},
	"file-uploads":          {"upload", "uploads", "file upload", "media", "documents", "attachments", "photos"},
	"ai-chatbot":            {"chatbot", "chat bot", "ai chat", "ai assistant", "virtual assistant", "ai support"},
	"ai-recommendations":    {"recommendation", "recommendations", "personalization", "personalized", "suggestions"},
	"ai-content-generation": {"content generation", "generate content", "ai writing", "copywriting", "text generation", "generative"},
	"ai-image-recognition":  {"image recognition", "computer vision", "object detection", "ocr", "visual search"},
}

// normalizePhrase lower-cases s and replaces every run of non-alphanumeric
// characters with a single space.
func normalizePhrase(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

// containsWords reports whether kw occurs in text on word boundaries.
func containsWords(text, kw string) bool {
	return strings.Contains(" "+text+" ", " "+kw+" ")
}

// MatchFeature resolves one free-text feature phrase to a catalog id. The
// longest matching keyword wins so "ai chatbot" beats "chat".
func MatchFeature(phrase string) (string, bool) {
	if _, ok := pricing.LookupFeature(strings.ToLower(strings.TrimSpace(phrase))); ok {
		return strings.ToLower(strings.TrimSpace(phrase)), true
	}
	text := normalizePhrase(phrase)
	if text == "" {
		return "", false
	}

	best, bestLen := "", 0
	for _, id := range featureIDOrder {
		for _, kw := range featureKeywords[id] {
			if len(kw) > bestLen && containsWords(text, kw) {
				best, bestLen = id, len(kw)
			}
		}
	}
	return best, best != ""
}

// NormalizeFeatures maps extracted phrases to catalog ids. Phrases that
// match nothing are returned separately and are not priced.
func NormalizeFeatures(phrases []string) (ids, unmatched []string) {
	for _, p := range phrases {
		if id, ok := MatchFeature(p); ok {
			ids = append(ids, id)
			continue
		}
		if strings.TrimSpace(p) != "" {
			unmatched = append(unmatched, strings.TrimSpace(p))
		}
	}
	return ids, unmatched
}

// FindFeatures scans a whole description for every feature it mentions.
func FindFeatures(text string) []string {
	norm := normalizePhrase(text)
	var found []string
	for _, id := range featureIDOrder {
		for _, kw := range featureKeywords[id] {
			if containsWords(norm, kw) {
				found = append(found, id)
				break
			}
		}
	}
	return found
}

// featureIDOrder is the sorted key set of featureKeywords.
var featureIDOrder = func() []string {
	ids := make([]string, 0, len(featureKeywords))
	for id := range featureKeywords {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}()
