package pricing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfiguration_Valid(t *testing.T) {
	require.NoError(t, DefaultConfiguration().Validate())
}

func TestDefaultConfiguration_FreshCopy(t *testing.T) {
	a := DefaultConfiguration()
	a.BaseCosts[domain.IdeaMobileApp] = 1
	a.HourlyRates[domain.RoleQA] = 1

	b := DefaultConfiguration()
	assert.Equal(t, 35000.0, b.BaseCosts[domain.IdeaMobileApp])
	assert.Equal(t, 30.0, b.HourlyRates[domain.RoleQA])
}

func TestMerge_PartialOverride(t *testing.T) {
	base := DefaultConfiguration()
	override := Configuration{
		HourlyRates: map[domain.Role]float64{domain.RoleFrontend: 60},
		BaseHours: map[domain.IdeaType]RoleHours{
			domain.IdeaMobileApp: {domain.RoleQA: 80},
		},
		FeatureBaseCost: 3000,
	}

	merged := Merge(base, override)

	assert.Equal(t, 60.0, merged.HourlyRates[domain.RoleFrontend])
	assert.Equal(t, 55.0, merged.HourlyRates[domain.RoleBackend])
	assert.Equal(t, 80.0, merged.BaseHours[domain.IdeaMobileApp][domain.RoleQA])
	assert.Equal(t, 120.0, merged.BaseHours[domain.IdeaMobileApp][domain.RoleFrontend])
	assert.Equal(t, 3000.0, merged.FeatureBaseCost)
	assert.Equal(t, base.FeatureCosts, merged.FeatureCosts)

	// inputs untouched
	assert.Equal(t, 45.0, base.HourlyRates[domain.RoleFrontend])
	assert.Equal(t, 40.0, base.BaseHours[domain.IdeaMobileApp][domain.RoleQA])
}

func TestMerge_FeatureCostsReplacedWholesale(t *testing.T) {
	merged := Merge(DefaultConfiguration(), Configuration{FeatureCosts: map[string]float64{"payments": 9000}})
	assert.Equal(t, map[string]float64{"payments": 9000}, merged.FeatureCosts)
}

func TestResolve_NilUsesDefaults(t *testing.T) {
	cfg, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), cfg)
}

func TestResolve_RejectsBadValues(t *testing.T) {
	_, err := Resolve(&Configuration{
		BaseCosts:       map[domain.IdeaType]float64{domain.IdeaMobileApp: 0, "rocket": 5},
		TechMultipliers: map[domain.TechStack]float64{domain.StackFlutter: -1},
		SupportCosts:    map[domain.SupportDuration]float64{domain.Support3Months: 2500},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "baseCosts: missing or non-positive entry for mobile-app")
	assert.Contains(t, err.Error(), `unknown idea type "rocket"`)
	assert.Contains(t, err.Error(), "techMultipliers")
	assert.Contains(t, err.Error(), "not a whole multiple of 1000")
}

func TestValidate_MissingIdeaTypeFailsLoudly(t *testing.T) {
	cfg := DefaultConfiguration()
	delete(cfg.BaseCosts, domain.IdeaEnterpriseSoftware)
	delete(cfg.BaseHours, domain.IdeaEnterpriseSoftware)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enterprise-software")
}

func TestConfiguration_DecodesPartialJSONAndYAML(t *testing.T) {
	var fromJSON Configuration
	require.NoError(t, json.Unmarshal([]byte(`{"hourlyRates":{"qa":35},"featureCosts":{}}`), &fromJSON))
	assert.Equal(t, 35.0, fromJSON.HourlyRates[domain.RoleQA])
	assert.NotNil(t, fromJSON.FeatureCosts)

	var fromYAML Configuration
	require.NoError(t, yaml.Unmarshal([]byte("baseCosts:\n  mobile-app: 40000\ntimelineMultipliers:\n  priority: 1.5\n"), &fromYAML))
	assert.Equal(t, 40000.0, fromYAML.BaseCosts[domain.IdeaMobileApp])
	assert.Equal(t, 1.5, fromYAML.TimelineMultipliers[domain.SpeedPriority])
	assert.Nil(t, fromYAML.FeatureCosts)
}
