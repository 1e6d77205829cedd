package intelligence

import (
	"math"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

type typeSignal struct {
	projectType domain.AIProjectType
	keywords    []string
}

// typeSignals are checked in order; the first match wins.
var typeSignals = []typeSignal{
	{domain.AIEnterprise, []string{"enterprise", "erp", "internal tool", "company wide", "corporate", "intranet"}},
	{domain.AIMarketplace, []string{"marketplace", "buyers and sellers", "vendors", "two sided", "sellers"}},
	{domain.AIEcommerce, []string{"ecommerce", "e commerce", "online store", "online shop", "webshop", "sell products", "shop"}},
	{domain.AISaaS, []string{"saas", "software as a service", "subscription platform", "b2b platform", "multi tenant"}},
	{domain.AIProduct, []string{"ai", "artificial intelligence", "machine learning", "llm", "gpt", "ai powered"}},
}

var (
	iosWords     = []string{"ios", "iphone", "ipad", "app store"}
	androidWords = []string{"android", "play store", "google play"}
	mobileWords  = []string{"mobile app", "mobile", "smartphone", "native app"}
	webWords     = []string{"website", "web", "web app", "browser", "portal", "landing page", "site"}
	simpleWords  = []string{"simple", "basic", "mvp", "small", "landing page", "brochure"}
	complexWords = []string{"complex", "scalable", "advanced", "real time", "enterprise grade", "high traffic", "millions"}
)

func anyWord(text string, words []string) bool {
	for _, w := range words {
		if containsWords(text, w) {
			return true
		}
	}
	return false
}

// DeterministicAnalysis reads an idea with keyword heuristics. It is the
// fallback whenever the model is disabled, unreachable or unreliable.
func DeterministicAnalysis(description string) *domain.AIAnalysis {
	text := normalizePhrase(description)

	ios, android := anyWord(text, iosWords), anyWord(text, androidWords)
	mobile := ios || android || anyWord(text, mobileWords)
	web := anyWord(text, webWords) || !mobile
	if mobile && !ios && !android {
		ios, android = true, true
	}

	projectType := domain.AIWebsite
	matched := false
	for _, sig := range typeSignals {
		if anyWord(text, sig.keywords) {
			projectType, matched = sig.projectType, true
			break
		}
	}
	if !matched {
		switch {
		case mobile && anyWord(text, webWords):
			projectType = domain.AIWebAndMobile
		case mobile:
			projectType = domain.AIMobileApp
		}
	}

	var platforms []domain.Platform
	if web {
		platforms = append(platforms, domain.PlatformWeb)
	}
	if ios {
		platforms = append(platforms, domain.PlatformIOS)
	}
	if android {
		platforms = append(platforms, domain.PlatformAndroid)
	}

	features := FindFeatures(description)

	return &domain.AIAnalysis{
		ProjectType:      projectType,
		Platforms:        platforms,
		RequiredFeatures: features,
		ComplexityLevel:  heuristicComplexity(text, projectType, len(features)),
		Summary:          summarize(description),
		Confidence:       math.Min(0.3+0.05*float64(len(features)), 0.7),
		Source:           domain.AnalysisHeuristic,
	}
}

func heuristicComplexity(text string, t domain.AIProjectType, featureCount int) domain.ComplexityLevel {
	score := featureCount
	switch t {
	case domain.AIEnterprise:
		score += 4
	case domain.AIMarketplace, domain.AISaaS, domain.AIProduct:
		score += 2
	case domain.AIWebAndMobile:
		score++
	}
	if anyWord(text, simpleWords) {
		score -= 2
	}
	if anyWord(text, complexWords) {
		score += 3
	}
	switch {
	case score <= 3:
		return domain.ComplexityBasic
	case score <= 7:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityAdvanced
	}
}

// summarize returns the first sentence of the description, capped at 160 bytes.
func summarize(description string) string {
	s := strings.TrimSpace(description)
	if i := strings.IndexAny(s, ".!?\n"); i > 0 {
		s = s[:i]
	}
	if len(s) > 160 {
		s = strings.TrimSpace(s[:157]) + "..."
	}
	return s
}
