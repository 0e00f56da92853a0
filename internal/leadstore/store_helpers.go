package leadstore

import (
	"database/sql"
	"errors"
	"time"
)

const leadColumns = "id, correlation_id, customer_name, phone_number, email, state, lead_vendor, assigned_agent, status, notes, needs_review, review_reason, created_at, updated_at, last_contact_at"

func scanLead(scanner interface{ Scan(dest ...any) error }) (*Lead, error) {
	var (
		id             int64
		correlationID  string
		customerName   string
		phoneNumber    sql.NullString
		email          sql.NullString
		state          sql.NullString
		leadVendor     sql.NullString
		assignedAgent  sql.NullString
		status         string
		notes          sql.NullString
		needsReview    sql.NullInt64
		reviewReason   sql.NullString
		createdRaw     sql.NullString
		updatedRaw     sql.NullString
		lastContactRaw sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&correlationID,
		&customerName,
		&phoneNumber,
		&email,
		&state,
		&leadVendor,
		&assignedAgent,
		&status,
		&notes,
		&needsReview,
		&reviewReason,
		&createdRaw,
		&updatedRaw,
		&lastContactRaw,
	); err != nil {
		return nil, err
	}

	lead := &Lead{
		ID:            id,
		CorrelationID: correlationID,
		CustomerName:  customerName,
		PhoneNumber:   phoneNumber.String,
		Email:         email.String,
		State:         state.String,
		LeadVendor:    leadVendor.String,
		AssignedAgent: assignedAgent.String,
		Status:        status,
		Notes:         notes.String,
		ReviewReason:  reviewReason.String,
	}
	if needsReview.Valid {
		lead.NeedsReview = needsReview.Int64 != 0
	}

	if created, err := parseTimeString(createdRaw.String); err == nil {
		lead.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		lead.UpdatedAt = updated
	}
	if lastContactRaw.Valid {
		if contact, err := parseTimeString(lastContactRaw.String); err == nil {
			lead.LastContactAt = &contact
		}
	}
	return lead, nil
}

func scanStageRow(scanner interface{ Scan(dest ...any) error }) (StageRow, error) {
	var (
		id           int64
		label        string
		columnClass  sql.NullString
		headerClass  sql.NullString
		displayOrder int
	)
	if err := scanner.Scan(&id, &label, &columnClass, &headerClass, &displayOrder); err != nil {
		return StageRow{}, err
	}
	return StageRow{
		ID:           id,
		Label:        label,
		ColumnClass:  columnClass.String,
		HeaderClass:  headerClass.String,
		DisplayOrder: displayOrder,
	}, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
