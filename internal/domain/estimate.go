package domain

type RoleCost struct {
	Role       Role    `json:"role"`
	Hours      int     `json:"hours"`
	HourlyRate float64 `json:"hourlyRate"`
	Cost       float64 `json:"cost"`
}

type InternalCost struct {
	LaborCosts         []RoleCost `json:"laborCosts"`
	TotalLaborCost     float64    `json:"totalLaborCost"`
	InfrastructureCost float64    `json:"infrastructureCost"`
	OverheadCost       float64    `json:"overheadCost"`
	RiskBufferPct      float64    `json:"riskBufferPct"`
	RiskBuffer         float64    `json:"riskBuffer"`
	TotalInternalCost  float64    `json:"totalInternalCost"`
}

// TotalHours sums the labor hours of every role.
func (c InternalCost) TotalHours() int {
	total := 0
	for _, lc := range c.LaborCosts {
		total += lc.Hours
	}
	return total
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ClientPrice struct {
	BasePrice            float64    `json:"basePrice"`
	FeaturesCost         float64    `json:"featuresCost"`
	TechMultiplier       float64    `json:"techMultiplier"`
	ComplexityMultiplier float64    `json:"complexityMultiplier"`
	TimelineMultiplier   float64    `json:"timelineMultiplier"`
	SupportCost          float64    `json:"supportCost"`
	TotalPrice           float64    `json:"totalPrice"`
	PriceRange           PriceRange `json:"priceRange"`
}

type ProfitAnalysis struct {
	ClientPrice  float64      `json:"clientPrice"`
	InternalCost float64      `json:"internalCost"`
	Profit       float64      `json:"profit"`
	ProfitMargin float64      `json:"profitMargin"`
	HealthStatus HealthStatus `json:"healthStatus"`
}

type Phase struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
}

type TeamSize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Timeline is a phased delivery plan. TotalWeeks always equals the sum of
// the phase durations.
type Timeline struct {
	Phases     []Phase  `json:"phases"`
	TotalWeeks int      `json:"totalWeeks"`
	TeamSize   TeamSize `json:"teamSize"`
}

type CostBreakdown struct {
	Category    string  `json:"category"`
	Percentage  int     `json:"percentage"`
	Amount      float64 `json:"amount"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

type RiskWarning struct {
	Type     WarningType `json:"type"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}

// Estimate bundles every engine output for one set of inputs.
type Estimate struct {
	Inputs               PricingInputs   `json:"inputs"`
	InternalCost         InternalCost    `json:"internalCost"`
	ClientPrice          ClientPrice     `json:"clientPrice"`
	Profit               ProfitAnalysis  `json:"profit"`
	Timeline             Timeline        `json:"timeline"`
	Breakdown            []CostBreakdown `json:"breakdown"`
	Warnings             []RiskWarning   `json:"warnings"`
	SupportHoursPerMonth float64         `json:"supportHoursPerMonth"`
}
