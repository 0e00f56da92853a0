package leadstore

import (
	"time"

	"leadstage/internal/stagetaxonomy"
)

// Lead represents a lead persisted in SQLite. Status holds the composite
// stage label ("<Parent> - <Reason>") exactly as written; grouping into
// board columns happens through the taxonomy, never by parsing here.
type Lead struct {
	ID            int64
	CorrelationID string
	CustomerName  string
	PhoneNumber   string
	Email         string
	State         string
	LeadVendor    string
	AssignedAgent string
	Status        string
	Notes         string
	NeedsReview   bool
	ReviewReason  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastContactAt *time.Time
}

// StageRow is one persisted stage record. DisplayOrder controls the input
// order handed to the taxonomy derivation, which in turn fixes column order.
type StageRow struct {
	ID           int64
	Label        string
	ColumnClass  string
	HeaderClass  string
	DisplayOrder int
}

// TaxonomyRecords converts stage rows into the read-only record shape the
// taxonomy consumes, preserving row order.
func TaxonomyRecords(rows []StageRow) []stagetaxonomy.StageRecord {
	records := make([]stagetaxonomy.StageRecord, len(rows))
	for i, row := range rows {
		records[i] = stagetaxonomy.StageRecord{
			Label:       row.Label,
			ColumnClass: row.ColumnClass,
			HeaderClass: row.HeaderClass,
		}
	}
	return records
}

// DatabaseHealth captures diagnostic information about the lead database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    string
	TableExists      bool
	IntegrityCheck   bool
	TotalLeads       int
	TotalStages      int
	Error            string
}

// HealthSummary describes aggregated lead counts per parent stage key.
type HealthSummary struct {
	Total    int
	ByParent map[string]int
}

// defaultStageRows seed a fresh database so the board has columns before
// anyone customizes the stage collection.
var defaultStageRows = []StageRow{
	{Label: "New", ColumnClass: "col-new", HeaderClass: "hdr-new", DisplayOrder: 10},
	{Label: "In Progress - Attempting Contact", ColumnClass: "col-active", HeaderClass: "hdr-active", DisplayOrder: 20},
	{Label: "In Progress - Callback Scheduled", ColumnClass: "col-active", HeaderClass: "hdr-active", DisplayOrder: 30},
	{Label: "Docs Pending - Police Report Pending", ColumnClass: "col-amber", HeaderClass: "hdr-amber", DisplayOrder: 40},
	{Label: "Docs Pending - Medical Records Pending", ColumnClass: "col-amber", HeaderClass: "hdr-amber", DisplayOrder: 50},
	{Label: "Needs Follow Up", ColumnClass: "col-late", HeaderClass: "hdr-late", DisplayOrder: 60},
	{Label: "Retainer Sent", ColumnClass: "col-teal", HeaderClass: "hdr-teal", DisplayOrder: 70},
	{Label: "Retainer Signed", ColumnClass: "col-green", HeaderClass: "hdr-green", DisplayOrder: 80},
	{Label: "Dropped - Unresponsive", ColumnClass: "col-gray", HeaderClass: "hdr-gray", DisplayOrder: 90},
	{Label: "Dropped - Not Qualified", ColumnClass: "col-gray", HeaderClass: "hdr-gray", DisplayOrder: 100},
}
