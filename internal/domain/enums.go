package domain

// DocumentType is the closed set of document categories the extractor knows.
type DocumentType string

const (
	DocTypeI9             DocumentType = "i9"
	DocTypeScheduleA      DocumentType = "schedule_a"
	DocTypeTax1040        DocumentType = "tax_1040"
	DocTypeJobApplication DocumentType = "job_application"
	DocTypeGeneric        DocumentType = "generic"
)

// KnownDocumentTypes lists every type with a dedicated extraction rule set.
// Anything else falls through to the generic extractor.
var KnownDocumentTypes = map[DocumentType]bool{
	DocTypeI9:             true,
	DocTypeScheduleA:      true,
	DocTypeTax1040:        true,
	DocTypeJobApplication: true,
	DocTypeGeneric:        true,
}

// ReportType selects which report template and system prompt apply.
type ReportType string

const (
	ReportGovernment ReportType = "government"
	ReportEmployer   ReportType = "employer"
	ReportClient     ReportType = "client"
	ReportSummary    ReportType = "summary"
)

// KnownReportTypes is the closed set of report kinds.
var KnownReportTypes = map[ReportType]bool{
	ReportGovernment: true,
	ReportEmployer:   true,
	ReportClient:     true,
	ReportSummary:    true,
}

// DataSource tags a payload with where it came from, so callers can tell
// real records from degraded or demo substitutes.
type DataSource string

const (
	SourceLive     DataSource = "live"
	SourceFallback DataSource = "fallback"
	SourceMock     DataSource = "mock"
)

// GoalStatus tracks progress on an employment goal.
type GoalStatus string

const (
	GoalCompleted  GoalStatus = "Completed"
	GoalInProgress GoalStatus = "In progress"
	GoalNotStarted GoalStatus = "Not started"
)

// PaperworkStatus tracks whether a client's required document is done.
type PaperworkStatus string

const (
	PaperworkCompleted PaperworkStatus = "Completed"
	PaperworkPending   PaperworkStatus = "Pending"
)

// UserRole defines the roles recognized by the auth layer.
type UserRole string

const (
	RoleCoach UserRole = "coach"
	RoleAdmin UserRole = "admin"
)

// FormType is the closed set of fillable form templates the vault supports.
type FormType string

const (
	FormTypeI9    FormType = "I-9"
	FormTypeSF256 FormType = "self_identification_of_disability"
)

// SupportedFormTypes maps a FormType to the record field it is stored under.
var SupportedFormTypes = map[FormType]string{
	FormTypeI9:    "i9_form",
	FormTypeSF256: "self_identification",
}
