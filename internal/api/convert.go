package api

import (
	"leadstage/internal/board"
	"leadstage/internal/leadstore"
	"leadstage/internal/stagetaxonomy"
	"leadstage/internal/workflow"
)

// FromLead converts a stored lead to its API representation. The parent key
// and reason are resolved against the provided stage records and parents so
// the DTO carries the same grouping the board would compute.
func FromLead(lead *leadstore.Lead, records []stagetaxonomy.StageRecord, parents []stagetaxonomy.ParentStage) Lead {
	if lead == nil {
		return Lead{}
	}

	_, reason, _ := stagetaxonomy.ParseLabel(lead.Status)
	dto := Lead{
		ID:            lead.ID,
		CorrelationID: lead.CorrelationID,
		CustomerName:  lead.CustomerName,
		PhoneNumber:   lead.PhoneNumber,
		Email:         lead.Email,
		State:         lead.State,
		LeadVendor:    lead.LeadVendor,
		AssignedAgent: lead.AssignedAgent,
		Status:        lead.Status,
		ParentKey:     stagetaxonomy.DeriveParentKey(lead.Status, records, parents),
		Reason:        reason,
		Notes:         lead.Notes,
		NeedsReview:   lead.NeedsReview,
		ReviewReason:  lead.ReviewReason,
	}
	if !lead.CreatedAt.IsZero() {
		dto.CreatedAt = lead.CreatedAt.UTC().Format(dateTimeFormat)
	}
	if !lead.UpdatedAt.IsZero() {
		dto.UpdatedAt = lead.UpdatedAt.UTC().Format(dateTimeFormat)
	}
	if lead.LastContactAt != nil {
		dto.LastContactAt = lead.LastContactAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromParentStage converts a derived parent stage to its API representation.
func FromParentStage(stage stagetaxonomy.ParentStage) StageInfo {
	return StageInfo{
		Key:         stage.Key,
		Label:       stage.Label,
		ColumnClass: stage.ColumnClass,
		HeaderClass: stage.HeaderClass,
		Reasons:     append([]string(nil), stage.Reasons...),
	}
}

// FromStatusSummary converts sweeper diagnostics to the transport form.
func FromStatusSummary(summary workflow.StatusSummary) WorkflowStatus {
	status := WorkflowStatus{
		Running:    summary.Running,
		LastError:  summary.LastError,
		SweptLeads: summary.SweptLeads,
	}
	if !summary.LastSweep.IsZero() {
		status.LastSweep = summary.LastSweep.UTC().Format(dateTimeFormat)
	}
	return status
}

// FromBoard converts a board snapshot into the transport view.
func FromBoard(b *board.Board) BoardView {
	if b == nil {
		return BoardView{}
	}
	parents := make([]stagetaxonomy.ParentStage, len(b.Columns))
	for i, column := range b.Columns {
		parents[i] = column.Stage
	}

	view := BoardView{Columns: make([]BoardColumn, len(b.Columns))}
	for i, column := range b.Columns {
		leads := make([]Lead, 0, len(column.Leads))
		for _, lead := range column.Leads {
			leads = append(leads, FromLead(lead, b.Records, parents))
		}
		view.Columns[i] = BoardColumn{
			Stage: FromParentStage(column.Stage),
			Leads: leads,
		}
	}
	return view
}
