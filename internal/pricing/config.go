package pricing

import (
	"errors"
	"fmt"
	"maps"
	"math"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

// ErrInvalidConfiguration is returned when a configuration cannot price
// every idea type. It is raised at load or save time, never during a calculation.
var ErrInvalidConfiguration = errors.New("invalid pricing configuration")

// RoleHours is base effort per role.
type RoleHours map[domain.Role]float64

// Configuration holds every tunable pricing table. A stored configuration
// may be partial; Resolve merges it over DefaultConfiguration.
type Configuration struct {
	BaseCosts             map[domain.IdeaType]float64        `json:"baseCosts,omitempty" yaml:"baseCosts,omitempty"`
	BaseHours             map[domain.IdeaType]RoleHours      `json:"baseHours,omitempty" yaml:"baseHours,omitempty"`
	FeatureCosts          map[string]float64                 `json:"featureCosts" yaml:"featureCosts,omitempty"`
	FeatureBaseCost       float64                            `json:"featureBaseCost,omitempty" yaml:"featureBaseCost,omitempty"`
	TechMultipliers       map[domain.TechStack]float64       `json:"techMultipliers,omitempty" yaml:"techMultipliers,omitempty"`
	FormatMultipliers     map[domain.ProductFormat]float64   `json:"formatMultipliers,omitempty" yaml:"formatMultipliers,omitempty"`
	TimelineMultipliers   map[domain.DeliverySpeed]float64   `json:"timelineMultipliers,omitempty" yaml:"timelineMultipliers,omitempty"`
	ComplexityMultipliers map[domain.ComplexityLevel]float64 `json:"complexityMultipliers,omitempty" yaml:"complexityMultipliers,omitempty"`
	HourlyRates           map[domain.Role]float64            `json:"hourlyRates,omitempty" yaml:"hourlyRates,omitempty"`
	InfrastructureCosts   map[domain.IdeaType]float64        `json:"infrastructureCosts,omitempty" yaml:"infrastructureCosts,omitempty"`
	SupportCosts          map[domain.SupportDuration]float64 `json:"supportCosts,omitempty" yaml:"supportCosts,omitempty"`
	SupportHours          map[domain.SupportDuration]float64 `json:"supportHours,omitempty" yaml:"supportHours,omitempty"`
}

var defaultHourlyRates = map[domain.Role]float64{
	domain.RoleFrontend: 45,
	domain.RoleBackend:  55,
	domain.RoleDesigner: 40,
	domain.RoleQA:       30,
	domain.RolePM:       50,
}

// DefaultConfiguration returns a fresh copy of the built-in pricing tables.
func DefaultConfiguration() Configuration {
	return Configuration{
		BaseCosts: map[domain.IdeaType]float64{
			domain.IdeaBusinessWebsite:    15000,
			domain.IdeaMobileApp:          35000,
			domain.IdeaWebsiteMobileApp:   50000,
			domain.IdeaStartupProduct:     45000,
			domain.IdeaEnterpriseSoftware: 90000,
			domain.IdeaAIPoweredProduct:   70000,
		},
		BaseHours: map[domain.IdeaType]RoleHours{
			domain.IdeaBusinessWebsite:    roleHours(48, 24, 24, 12, 12),
			domain.IdeaMobileApp:          roleHours(120, 100, 50, 40, 30),
			domain.IdeaWebsiteMobileApp:   roleHours(180, 140, 70, 60, 45),
			domain.IdeaStartupProduct:     roleHours(140, 140, 60, 50, 40),
			domain.IdeaEnterpriseSoftware: roleHours(260, 360, 90, 110, 90),
			domain.IdeaAIPoweredProduct:   roleHours(160, 260, 60, 70, 55),
		},
		FeatureCosts:    catalogCosts(),
		FeatureBaseCost: 2500,
		TechMultipliers: map[domain.TechStack]float64{
			domain.StackReactNext:     1.0,
			domain.StackVueNuxt:       1.0,
			domain.StackAngular:       1.1,
			domain.StackWordPress:     0.85,
			domain.StackNodeExpress:   1.0,
			domain.StackPythonDjango:  1.05,
			domain.StackReactNative:   1.1,
			domain.StackFlutter:       1.1,
			domain.StackNativeIOS:     1.3,
			domain.StackNativeAndroid: 1.3,
		},
		FormatMultipliers: map[domain.ProductFormat]float64{
			domain.FormatWebsite:       1.0,
			domain.FormatMobileApp:     1.2,
			domain.FormatWebsiteAndApp: 1.5,
			domain.FormatFullEcosystem: 1.8,
		},
		TimelineMultipliers: map[domain.DeliverySpeed]float64{
			domain.SpeedStandard: 1.0,
			domain.SpeedFaster:   1.2,
			domain.SpeedPriority: 1.4,
		},
		ComplexityMultipliers: map[domain.ComplexityLevel]float64{
			domain.ComplexityBasic:    1.0,
			domain.ComplexityMedium:   1.2,
			domain.ComplexityAdvanced: 1.5,
		},
		HourlyRates: maps.Clone(defaultHourlyRates),
		InfrastructureCosts: map[domain.IdeaType]float64{
			domain.IdeaBusinessWebsite:    100,
			domain.IdeaMobileApp:          300,
			domain.IdeaWebsiteMobileApp:   400,
			domain.IdeaStartupProduct:     500,
			domain.IdeaEnterpriseSoftware: 1500,
			domain.IdeaAIPoweredProduct:   1200,
		},
		SupportCosts: map[domain.SupportDuration]float64{
			domain.SupportNone:     0,
			domain.Support3Months:  3000,
			domain.Support6Months:  6000,
			domain.Support12Months: 10000,
		},
		SupportHours: map[domain.SupportDuration]float64{
			domain.SupportNone:     0,
			domain.Support3Months:  20,
			domain.Support6Months:  20,
			domain.Support12Months: 25,
		},
	}
}

func roleHours(frontend, backend, designer, qa, pm float64) RoleHours {
	return RoleHours{
		domain.RoleFrontend: frontend,
		domain.RoleBackend:  backend,
		domain.RoleDesigner: designer,
		domain.RoleQA:       qa,
		domain.RolePM:       pm,
	}
}

// Merge overlays override on base and returns a new configuration; neither
// argument is modified. Map entries are merged key by key (base hours per
// role), except FeatureCosts which, when present, replaces the base price
// list as a whole. A zero FeatureBaseCost keeps the base value.
func Merge(base, override Configuration) Configuration {
	out := Configuration{
		BaseCosts:             mergeMap(base.BaseCosts, override.BaseCosts),
		BaseHours:             make(map[domain.IdeaType]RoleHours, len(base.BaseHours)),
		FeatureCosts:          maps.Clone(base.FeatureCosts),
		FeatureBaseCost:       base.FeatureBaseCost,
		TechMultipliers:       mergeMap(base.TechMultipliers, override.TechMultipliers),
		FormatMultipliers:     mergeMap(base.FormatMultipliers, override.FormatMultipliers),
		TimelineMultipliers:   mergeMap(base.TimelineMultipliers, override.TimelineMultipliers),
		ComplexityMultipliers: mergeMap(base.ComplexityMultipliers, override.ComplexityMultipliers),
		HourlyRates:           mergeMap(base.HourlyRates, override.HourlyRates),
		InfrastructureCosts:   mergeMap(base.InfrastructureCosts, override.InfrastructureCosts),
		SupportCosts:          mergeMap(base.SupportCosts, override.SupportCosts),
		SupportHours:          mergeMap(base.SupportHours, override.SupportHours),
	}
	for idea, hours := range base.BaseHours {
		out.BaseHours[idea] = maps.Clone(hours)
	}
	for idea, hours := range override.BaseHours {
		out.BaseHours[idea] = mergeMap(out.BaseHours[idea], hours)
	}
	if override.FeatureCosts != nil {
		out.FeatureCosts = maps.Clone(override.FeatureCosts)
	}
	if override.FeatureBaseCost != 0 {
		out.FeatureBaseCost = override.FeatureBaseCost
	}
	return out
}

func mergeMap[K comparable, V any](base, override map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// Resolve merges a possibly partial configuration over the defaults and
// validates the result.
func Resolve(partial *Configuration) (Configuration, error) {
	cfg := DefaultConfiguration()
	if partial != nil {
		cfg = Merge(cfg, *partial)
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate checks that every enum key resolves and no value is negative.
// All problems are reported together.
func (c Configuration) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for _, idea := range domain.IdeaTypes {
		if v, ok := c.BaseCosts[idea]; !ok || v <= 0 {
			add("baseCosts: missing or non-positive entry for %s", idea)
		}
		hours, ok := c.BaseHours[idea]
		if !ok {
			add("baseHours: missing entry for %s", idea)
		} else {
			for _, role := range domain.Roles {
				if v, ok := hours[role]; !ok || v < 0 {
					add("baseHours.%s: missing or negative %s hours", idea, role)
				}
			}
		}
		if v, ok := c.InfrastructureCosts[idea]; !ok || v < 0 {
			add("infrastructureCosts: missing or negative entry for %s", idea)
		}
	}
	for idea := range c.BaseCosts {
		if !idea.Valid() {
			add("baseCosts: unknown idea type %q", idea)
		}
	}
	for _, role := range domain.Roles {
		if v, ok := c.HourlyRates[role]; !ok || v <= 0 {
			add("hourlyRates: missing or non-positive rate for %s", role)
		}
	}
	if c.FeatureBaseCost < 0 {
		add("featureBaseCost: must not be negative")
	}
	for id, v := range c.FeatureCosts {
		if v < 0 {
			add("featureCosts.%s: must not be negative", id)
		}
	}
	checkMultipliers(c.TechMultipliers, domain.TechStacks, "techMultipliers", add)
	checkMultipliers(c.FormatMultipliers, domain.ProductFormats, "formatMultipliers", add)
	checkMultipliers(c.TimelineMultipliers, domain.DeliverySpeeds, "timelineMultipliers", add)
	checkMultipliers(c.ComplexityMultipliers, domain.ComplexityLevels, "complexityMultipliers", add)
	for _, d := range domain.SupportDurations {
		if v, ok := c.SupportCosts[d]; !ok || v < 0 {
			add("supportCosts: missing or negative entry for %s", d)
		} else if math.Mod(v, 1000) != 0 {
			add("supportCosts.%s: %.2f is not a whole multiple of 1000", d, v)
		}
		if v := c.SupportHours[d]; v < 0 {
			add("supportHours: negative entry for %s", d)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errors.Join(errs...))
}

func checkMultipliers[K interface {
	~string
	Valid() bool
}](m map[K]float64, keys []K, name string, add func(string, ...any)) {
	for _, k := range keys {
		if v, ok := m[k]; !ok || v <= 0 {
			add("%s: missing or non-positive multiplier for %s", name, k)
		}
	}
	for k := range m {
		if !k.Valid() {
			add("%s: unknown key %q", name, k)
		}
	}
}

// lookup returns m[k], or def when the key is absent.
func lookup[K comparable](m map[K]float64, k K, def float64) float64 {
	if v, ok := m[k]; ok {
		return v
	}
	return def
}

// HourlyRate returns the configured rate for role, falling back to the
// built-in rate table.
func (c Configuration) HourlyRate(role domain.Role) float64 {
	if v, ok := c.HourlyRates[role]; ok {
		return v
	}
	return defaultHourlyRates[role]
}
