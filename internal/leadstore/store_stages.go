package leadstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ListStageRecords returns the stage collection in display order. This is
// the input order the taxonomy derivation sees, so it must be stable.
func (s *Store) ListStageRecords(ctx context.Context) ([]StageRow, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, label, column_class, header_class, display_order
         FROM stage_records ORDER BY display_order, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query stage records: %w", err)
	}
	defer rows.Close()

	var stages []StageRow
	for rows.Next() {
		stage, err := scanStageRow(rows)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, rows.Err()
}

// AppendStageRecord adds a stage record after the current last display slot.
func (s *Store) AppendStageRecord(ctx context.Context, label, columnClass, headerClass string) (*StageRow, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.New("stage label is required")
	}

	var maxOrder int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) FROM stage_records`,
	).Scan(&maxOrder); err != nil {
		return nil, fmt.Errorf("read max display order: %w", err)
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO stage_records (label, column_class, header_class, display_order)
         VALUES (?, ?, ?, ?)`,
		label,
		nullableString(columnClass),
		nullableString(headerClass),
		maxOrder+10,
	)
	if err != nil {
		return nil, fmt.Errorf("insert stage record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &StageRow{
		ID:           id,
		Label:        label,
		ColumnClass:  columnClass,
		HeaderClass:  headerClass,
		DisplayOrder: maxOrder + 10,
	}, nil
}

// ReplaceStageRecords swaps the whole stage collection in one transaction.
// Display order follows slice order.
func (s *Store) ReplaceStageRecords(ctx context.Context, stages []StageRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin stage tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stage_records`); err != nil {
		return fmt.Errorf("clear stage records: %w", err)
	}
	for i, stage := range stages {
		label := strings.TrimSpace(stage.Label)
		if label == "" {
			return fmt.Errorf("stage record %d has an empty label", i)
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO stage_records (label, column_class, header_class, display_order)
             VALUES (?, ?, ?, ?)`,
			label,
			nullableString(stage.ColumnClass),
			nullableString(stage.HeaderClass),
			(i+1)*10,
		); err != nil {
			return fmt.Errorf("insert stage record %q: %w", label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit stage records: %w", err)
	}
	return nil
}

func (s *Store) seedStageRecords(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM stage_records`).Scan(&count); err != nil {
		return fmt.Errorf("count stage records: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.ReplaceStageRecords(ctx, defaultStageRows)
}
