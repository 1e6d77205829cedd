package pricing

import (
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFeatureCatalog_Shape(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range FeatureCatalog {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
		assert.NotEmpty(t, f.Name)
		assert.Positive(t, f.Cost)
		for _, role := range domain.Roles {
			_, ok := f.Hours[role]
			assert.True(t, ok, "%s missing %s hours", f.ID, role)
			assert.GreaterOrEqual(t, f.Hours[role], 0.0)
		}
	}
}

func TestLookupFeature(t *testing.T) {
	f, ok := LookupFeature("payments")
	assert.True(t, ok)
	assert.Equal(t, CategoryCommerce, f.Category)

	_, ok = LookupFeature("teleport")
	assert.False(t, ok)
}

func TestHasAIFeature(t *testing.T) {
	assert.True(t, HasAIFeature([]string{"cms", "ai-content-generation"}))
	assert.False(t, HasAIFeature([]string{"cms", "ai-unknown"}))
	assert.False(t, HasAIFeature(nil))
}
