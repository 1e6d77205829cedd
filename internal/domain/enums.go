package domain

type IdeaType string

const (
	IdeaUnset              IdeaType = ""
	IdeaBusinessWebsite    IdeaType = "business-website"
	IdeaMobileApp          IdeaType = "mobile-app"
	IdeaWebsiteMobileApp   IdeaType = "website-mobile-app"
	IdeaStartupProduct     IdeaType = "startup-product"
	IdeaEnterpriseSoftware IdeaType = "enterprise-software"
	IdeaAIPoweredProduct   IdeaType = "ai-powered-product"
)

// IdeaTypes lists every idea type in display order.
var IdeaTypes = []IdeaType{
	IdeaBusinessWebsite, IdeaMobileApp, IdeaWebsiteMobileApp,
	IdeaStartupProduct, IdeaEnterpriseSoftware, IdeaAIPoweredProduct,
}

type ProductFormat string

const (
	FormatUnset         ProductFormat = ""
	FormatWebsite       ProductFormat = "website"
	FormatMobileApp     ProductFormat = "mobile-app"
	FormatWebsiteAndApp ProductFormat = "website-and-app"
	FormatFullEcosystem ProductFormat = "full-ecosystem"
)

var ProductFormats = []ProductFormat{
	FormatWebsite, FormatMobileApp, FormatWebsiteAndApp, FormatFullEcosystem,
}

type TechStack string

const (
	StackUnset         TechStack = ""
	StackReactNext     TechStack = "react-nextjs"
	StackVueNuxt       TechStack = "vue-nuxt"
	StackAngular       TechStack = "angular"
	StackWordPress     TechStack = "wordpress"
	StackNodeExpress   TechStack = "node-express"
	StackPythonDjango  TechStack = "python-django"
	StackReactNative   TechStack = "react-native"
	StackFlutter       TechStack = "flutter"
	StackNativeIOS     TechStack = "native-ios"
	StackNativeAndroid TechStack = "native-android"
)

var TechStacks = []TechStack{
	StackReactNext, StackVueNuxt, StackAngular, StackWordPress, StackNodeExpress,
	StackPythonDjango, StackReactNative, StackFlutter, StackNativeIOS, StackNativeAndroid,
}

type DeliverySpeed string

const (
	SpeedStandard DeliverySpeed = "standard"
	SpeedFaster   DeliverySpeed = "faster"
	SpeedPriority DeliverySpeed = "priority"
)

var DeliverySpeeds = []DeliverySpeed{SpeedStandard, SpeedFaster, SpeedPriority}

type SupportDuration string

const (
	SupportNone     SupportDuration = "none"
	Support3Months  SupportDuration = "3-months"
	Support6Months  SupportDuration = "6-months"
	Support12Months SupportDuration = "12-months"
)

var SupportDurations = []SupportDuration{SupportNone, Support3Months, Support6Months, Support12Months}

type ComplexityLevel string

const (
	ComplexityNone     ComplexityLevel = ""
	ComplexityBasic    ComplexityLevel = "basic"
	ComplexityMedium   ComplexityLevel = "medium"
	ComplexityAdvanced ComplexityLevel = "advanced"
)

var ComplexityLevels = []ComplexityLevel{ComplexityBasic, ComplexityMedium, ComplexityAdvanced}

type Role string

const (
	RoleFrontend Role = "frontend"
	RoleBackend  Role = "backend"
	RoleDesigner Role = "designer"
	RoleQA       Role = "qa"
	RolePM       Role = "pm"
)

// Roles is the fixed order of labor entries in an internal cost.
var Roles = []Role{RoleFrontend, RoleBackend, RoleDesigner, RoleQA, RolePM}

type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

var HealthStatuses = []HealthStatus{HealthHealthy, HealthWarning, HealthCritical}

type WarningType string

const (
	WarningMargin      WarningType = "margin"
	WarningTimeline    WarningType = "timeline"
	WarningComplexity  WarningType = "complexity"
	WarningStakeholder WarningType = "stakeholder"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type ProjectStatus string

const (
	ProjectNew      ProjectStatus = "new"
	ProjectInReview ProjectStatus = "in_review"
	ProjectApproved ProjectStatus = "approved"
	ProjectRejected ProjectStatus = "rejected"
	ProjectArchived ProjectStatus = "archived"
)

var ProjectStatuses = []ProjectStatus{
	ProjectNew, ProjectInReview, ProjectApproved, ProjectRejected, ProjectArchived,
}

type ProjectSource string

const (
	SourceForm ProjectSource = "form"
	SourceAI   ProjectSource = "ai"
	SourceAPI  ProjectSource = "api"
)

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (t IdeaType) Valid() bool          { return contains(IdeaTypes, t) }
func (f ProductFormat) Valid() bool     { return contains(ProductFormats, f) }
func (s TechStack) Valid() bool         { return contains(TechStacks, s) }
func (s DeliverySpeed) Valid() bool     { return contains(DeliverySpeeds, s) }
func (d SupportDuration) Valid() bool   { return contains(SupportDurations, d) }
func (c ComplexityLevel) Valid() bool   { return contains(ComplexityLevels, c) }
func (r Role) Valid() bool              { return contains(Roles, r) }
func (s ProjectStatus) Valid() bool     { return contains(ProjectStatuses, s) }
func (h HealthStatus) Valid() bool      { return contains(HealthStatuses, h) }
func (s ProjectSource) Valid() bool     { return s == SourceForm || s == SourceAI || s == SourceAPI }

// IsTerminal reports whether the status freezes the project.
func (s ProjectStatus) IsTerminal() bool { return s == ProjectArchived }
