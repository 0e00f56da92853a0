package leadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadstage/internal/textutil"
)

// NewLeadParams carries intake fields for a fresh lead.
type NewLeadParams struct {
	CustomerName  string
	PhoneNumber   string
	Email         string
	State         string
	LeadVendor    string
	AssignedAgent string
	Status        string
	Notes         string
}

// NewLead inserts a lead. The customer name is required; phone numbers are
// normalized to bare digits on the way in. When Status is empty the lead
// starts in the first stage record's label.
func (s *Store) NewLead(ctx context.Context, params NewLeadParams) (*Lead, error) {
	name := textutil.PersonName(params.CustomerName)
	if name == "" {
		return nil, errors.New("customer name is required")
	}

	status := strings.TrimSpace(params.Status)
	if status == "" {
		rows, err := s.ListStageRecords(ctx)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, errors.New("no stage records to assign an initial status from")
		}
		status = rows[0].Label
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO leads (
            correlation_id, customer_name, phone_number, email, state,
            lead_vendor, assigned_agent, status, notes,
            created_at, updated_at, last_contact_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		name,
		nullableString(textutil.NormalizePhone(params.PhoneNumber)),
		nullableString(strings.TrimSpace(params.Email)),
		nullableString(strings.ToUpper(strings.TrimSpace(params.State))),
		nullableString(strings.TrimSpace(params.LeadVendor)),
		nullableString(textutil.PersonName(params.AssignedAgent)),
		status,
		nullableString(strings.TrimSpace(params.Notes)),
		timestamp,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a lead by identifier. A missing lead returns (nil, nil).
func (s *Store) GetByID(ctx context.Context, id int64) (*Lead, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// FindByCorrelationID returns the lead matching a correlation id, or nil.
func (s *Store) FindByCorrelationID(ctx context.Context, correlationID string) (*Lead, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+leadColumns+` FROM leads WHERE correlation_id = ? LIMIT 1`,
		correlationID,
	)
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by correlation id: %w", err)
	}
	return lead, nil
}

// Update persists changes to an existing lead and refreshes updated_at.
func (s *Store) Update(ctx context.Context, lead *Lead) error {
	if lead == nil {
		return errors.New("lead is nil")
	}
	lead.UpdatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE leads
         SET customer_name = ?, phone_number = ?, email = ?, state = ?,
             lead_vendor = ?, assigned_agent = ?, status = ?, notes = ?,
             needs_review = ?, review_reason = ?, updated_at = ?, last_contact_at = ?
         WHERE id = ?`,
		lead.CustomerName,
		nullableString(lead.PhoneNumber),
		nullableString(lead.Email),
		nullableString(lead.State),
		nullableString(lead.LeadVendor),
		nullableString(lead.AssignedAgent),
		lead.Status,
		nullableString(lead.Notes),
		boolToInt(lead.NeedsReview),
		nullableString(lead.ReviewReason),
		lead.UpdatedAt.Format(time.RFC3339Nano),
		nullableTime(lead.LastContactAt),
		lead.ID,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// List returns leads ordered by creation time, optionally filtered to an
// exact set of status labels.
func (s *Store) List(ctx context.Context, statuses ...string) ([]*Lead, error) {
	var (
		rows *sql.Rows
		err  error
	)

	baseQuery := `SELECT ` + leadColumns + ` FROM leads`
	orderClause := ` ORDER BY created_at, id`

	if len(statuses) == 0 {
		rows, err = s.db.QueryContext(ctx, baseQuery+orderClause)
	} else {
		placeholders := makePlaceholders(len(statuses))
		args := make([]any, len(statuses))
		for i, status := range statuses {
			args[i] = status
		}
		query := baseQuery + ` WHERE status IN (` + placeholders + `)` + orderClause
		rows, err = s.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()

	var leads []*Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// ListStale returns leads whose last contact is older than the cutoff,
// ordered oldest first. Leads with no recorded contact are excluded; intake
// stamps last_contact_at, so a NULL means legacy data someone is handling
// manually.
func (s *Store) ListStale(ctx context.Context, cutoff time.Time) ([]*Lead, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+leadColumns+` FROM leads
         WHERE last_contact_at IS NOT NULL AND last_contact_at < ?
         ORDER BY last_contact_at, id`,
		cutoff.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("query stale leads: %w", err)
	}
	defer rows.Close()

	var leads []*Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// Remove deletes a lead. Removing an unknown id is not an error.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// TouchContact stamps a lead's last_contact_at with the current time.
func (s *Store) TouchContact(ctx context.Context, id int64) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(
		ctx,
		`UPDATE leads SET last_contact_at = ?, updated_at = ? WHERE id = ?`,
		now, now, id,
	); err != nil {
		return fmt.Errorf("touch contact: %w", err)
	}
	return nil
}
