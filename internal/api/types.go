package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Lead describes a lead in a transport-friendly format.
type Lead struct {
	ID            int64  `json:"id"`
	CorrelationID string `json:"correlationId"`
	CustomerName  string `json:"customerName"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Email         string `json:"email,omitempty"`
	State         string `json:"state,omitempty"`
	LeadVendor    string `json:"leadVendor,omitempty"`
	AssignedAgent string `json:"assignedAgent,omitempty"`
	Status        string `json:"status"`
	ParentKey     string `json:"parentKey"`
	Reason        string `json:"reason,omitempty"`
	Notes         string `json:"notes,omitempty"`
	NeedsReview   bool   `json:"needsReview"`
	ReviewReason  string `json:"reviewReason,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	LastContactAt string `json:"lastContactAt,omitempty"`
}

// StageInfo describes a derived parent stage.
type StageInfo struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	ColumnClass string   `json:"columnClass,omitempty"`
	HeaderClass string   `json:"headerClass,omitempty"`
	Reasons     []string `json:"reasons,omitempty"`
}

// BoardColumn is one kanban column with its leads.
type BoardColumn struct {
	Stage StageInfo `json:"stage"`
	Leads []Lead    `json:"leads"`
}

// BoardView is the full kanban snapshot.
type BoardView struct {
	Columns []BoardColumn `json:"columns"`
}

// LeadListResponse wraps a lead listing.
type LeadListResponse struct {
	Leads []Lead `json:"leads"`
}

// StageListResponse wraps a stage listing.
type StageListResponse struct {
	Stages []StageInfo `json:"stages"`
}

// WorkflowStatus summarizes sweeper execution state.
type WorkflowStatus struct {
	Running    bool   `json:"running"`
	LastSweep  string `json:"lastSweep,omitempty"`
	LastError  string `json:"lastError,omitempty"`
	SweptLeads int    `json:"sweptLeads"`
}

// DaemonStatus captures daemon runtime information.
type DaemonStatus struct {
	Running      bool           `json:"running"`
	PID          int            `json:"pid"`
	DBPath       string         `json:"dbPath"`
	LockFilePath string         `json:"lockFilePath"`
	TotalLeads   int            `json:"totalLeads"`
	LeadCounts   map[string]int `json:"leadCounts"`
	Workflow     WorkflowStatus `json:"workflow"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
