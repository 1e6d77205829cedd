package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation marks input rejected at a system boundary (CLI flags, HTTP bodies).
var ErrValidation = errors.New("validation failed")

// PricingInputs is the sole input of the estimation engine. The zero value
// (no idea type) is the incomplete-form state and prices to zero.
type PricingInputs struct {
	IdeaType         IdeaType        `json:"ideaType" yaml:"ideaType"`
	ProductFormat    ProductFormat   `json:"productFormat,omitempty" yaml:"productFormat,omitempty"`
	TechStack        TechStack       `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	SelectedFeatures []string        `json:"selectedFeatures" yaml:"selectedFeatures"`
	DeliverySpeed    DeliverySpeed   `json:"deliverySpeed" yaml:"deliverySpeed"`
	SupportDuration  SupportDuration `json:"supportDuration" yaml:"supportDuration"`
	ComplexityLevel  ComplexityLevel `json:"complexityLevel,omitempty" yaml:"complexityLevel,omitempty"`
}

// Normalize returns a copy with defaults applied and the feature set
// lower-cased, de-duplicated and sorted.
func (in PricingInputs) Normalize() PricingInputs {
	out := in
	if out.DeliverySpeed == "" {
		out.DeliverySpeed = SpeedStandard
	}
	if out.SupportDuration == "" {
		out.SupportDuration = SupportNone
	}
	out.SelectedFeatures = NormalizeFeatureIDs(in.SelectedFeatures)
	return out
}

// NormalizeFeatureIDs collapses duplicates and blank entries.
func NormalizeFeatureIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// FeatureCount is the number of distinct selected features.
func (in PricingInputs) FeatureCount() int {
	return len(NormalizeFeatureIDs(in.SelectedFeatures))
}

// HasFeature reports whether id is in the selected set.
func (in PricingInputs) HasFeature(id string) bool {
	for _, f := range in.SelectedFeatures {
		if strings.EqualFold(strings.TrimSpace(f), id) {
			return true
		}
	}
	return false
}

// Validate rejects enum values outside their closed sets. Unset idea type,
// format, stack and complexity are allowed.
func (in PricingInputs) Validate() error {
	var errs []error
	if in.IdeaType != IdeaUnset && !in.IdeaType.Valid() {
		errs = append(errs, fmt.Errorf("unknown idea type %q", in.IdeaType))
	}
	if in.ProductFormat != FormatUnset && !in.ProductFormat.Valid() {
		errs = append(errs, fmt.Errorf("unknown product format %q", in.ProductFormat))
	}
	if in.TechStack != StackUnset && !in.TechStack.Valid() {
		errs = append(errs, fmt.Errorf("unknown tech stack %q", in.TechStack))
	}
	if in.DeliverySpeed != "" && !in.DeliverySpeed.Valid() {
		errs = append(errs, fmt.Errorf("unknown delivery speed %q", in.DeliverySpeed))
	}
	if in.SupportDuration != "" && !in.SupportDuration.Valid() {
		errs = append(errs, fmt.Errorf("unknown support duration %q", in.SupportDuration))
	}
	if in.ComplexityLevel != ComplexityNone && !in.ComplexityLevel.Valid() {
		errs = append(errs, fmt.Errorf("unknown complexity level %q", in.ComplexityLevel))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
}
