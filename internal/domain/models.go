package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Client is a person the job coach supports. Lifecycle is owned by the
// record store (or the fixed sample list in demo mode); within a request it
// is immutable.
type Client struct {
	ID         string     `json:"id" firestore:"id"`
	Name       string     `json:"name" firestore:"name"`
	Disability string     `json:"disability" firestore:"disability"`
	JobStatus  string     `json:"job_status" firestore:"job_status"`
	Source     DataSource `json:"source,omitempty" firestore:"-"`
}

// Document is the metadata record for one processed document. Created once
// per extraction attempt (successful or not) and never mutated afterward.
type Document struct {
	ID               string                 `json:"id" firestore:"id"`
	ClientID         string                 `json:"client_id" firestore:"client_id"`
	DocumentType     DocumentType           `json:"document_type" firestore:"document_type"`
	OriginalFileName string                 `json:"original_file_name" firestore:"original_file_name"`
	ProcessedBy      string                 `json:"processed_by,omitempty" firestore:"processed_by"`
	ProcessedAt      time.Time              `json:"processed_at" firestore:"processed_at"`
	Data             map[string]interface{} `json:"data" firestore:"data"`
	FileURL          string                 `json:"file_url,omitempty" firestore:"file_url,omitempty"`
	Source           DataSource             `json:"source,omitempty" firestore:"-"`
	Error            string                 `json:"error,omitempty" firestore:"-"`
}

// ExtractedFieldSet is the outcome of running field extraction on analyzed
// document text. It is embedded in a Document's Data, not persisted on its own.
type ExtractedFieldSet struct {
	DocumentType   string            `json:"document_type"`
	Fields         map[string]string `json:"fields"`
	FieldsDetected int               `json:"fields_detected"`
	Tables         [][]TableCell     `json:"tables,omitempty"`
}

// TableCell is one cell of a table the analyzer recognized.
type TableCell struct {
	RowIndex    int    `json:"row_index"`
	ColumnIndex int    `json:"column_index"`
	Content     string `json:"content"`
}

// AssistantTurn is one request/response exchange with the assistant. It is
// ephemeral and never persisted.
type AssistantTurn struct {
	Query        string   `json:"query"`
	ClientID     string   `json:"client_id,omitempty"`
	ResponseText string   `json:"response_text"`
	Sources      []string `json:"sources,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// TaskStep is one step of a task breakdown for a client.
type TaskStep struct {
	StepNumber        int    `json:"step_number"`
	Instruction       string `json:"instruction"`
	VisualDescription string `json:"visual_description,omitempty"`
	Error             string `json:"error,omitempty"`
}

// DateRange bounds a report period. Dates are YYYY-MM-DD.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Report is one generated progress report. Each generation is independent;
// reports are never updated in place.
type Report struct {
	ReportID    string                 `json:"report_id"`
	ClientID    string                 `json:"client_id"`
	ClientName  string                 `json:"client_name,omitempty"`
	ReportType  ReportType             `json:"report_type"`
	DateRange   DateRange              `json:"date_range"`
	GeneratedAt time.Time              `json:"generated_at"`
	GeneratedBy string                 `json:"generated_by,omitempty"`
	Content     interface{}            `json:"content"`
	Metrics     map[string]interface{} `json:"metrics"`
	Source      DataSource             `json:"source,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// ProgressNote is a dated observation from the coach.
type ProgressNote struct {
	Date string `json:"date" firestore:"date"`
	Note string `json:"note" firestore:"note"`
}

// Goal is one employment goal and its status.
type Goal struct {
	Goal   string     `json:"goal" firestore:"goal"`
	Status GoalStatus `json:"status" firestore:"status"`
}

// PaperworkItem tracks one required document for a client.
type PaperworkItem struct {
	Type   DocumentType    `json:"type" firestore:"type"`
	Status PaperworkStatus `json:"status" firestore:"status"`
	Date   string          `json:"date" firestore:"date"`
}

// ClientProfile is the full data set reports are assembled from.
type ClientProfile struct {
	ClientID       string          `json:"client_id" firestore:"client_id"`
	Name           string          `json:"name" firestore:"name"`
	DisabilityType string          `json:"disability_type" firestore:"disability_type"`
	JobTitle       string          `json:"job_title" firestore:"job_title"`
	Employer       string          `json:"employer" firestore:"employer"`
	StartDate      string          `json:"start_date" firestore:"start_date"`
	WorkHours      float64         `json:"work_hours" firestore:"work_hours"`
	Wage           float64         `json:"wage" firestore:"wage"`
	Accommodations []string        `json:"accommodations" firestore:"accommodations"`
	ProgressNotes  []ProgressNote  `json:"progress_notes" firestore:"progress_notes"`
	Goals          []Goal          `json:"goals" firestore:"goals"`
	Documents      []PaperworkItem `json:"documents" firestore:"documents"`
}

// User is an authenticated account. The user set is a fixed list configured
// at startup; there is no registration surface.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Disabled     bool     `json:"disabled"`
}

// FormRecord is one SSN-keyed row in the form vault. The SSN is stored only
// in encrypted form; form payloads are raw JSON keyed by form slot.
type FormRecord struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	EncryptedSSN string          `db:"encrypted_ssn" json:"-"`
	I9Form       json.RawMessage `db:"i9_form" json:"i9_form,omitempty"`
	SelfIdent    json.RawMessage `db:"self_identification" json:"self_identification,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}
