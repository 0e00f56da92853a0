package board_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"leadstage/internal/board"
	"leadstage/internal/leadstore"
	"leadstage/internal/services"
	"leadstage/internal/testsupport"
)

func TestSnapshotGroupsLeadsIntoColumns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedStages(t, store,
		"Docs Pending - Police Report Pending",
		"Docs Pending - Medical Records Pending",
		"Retainer Signed",
	)

	ctx := context.Background()
	docs := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Docs Lead",
		Status:       "Docs Pending - Police Report Pending",
	})
	signed := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Signed Lead",
		Status:       "Retainer Signed",
	})

	b, err := board.Snapshot(ctx, store)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(b.Columns) != 2 {
		t.Fatalf("expected two merged columns, got %d", len(b.Columns))
	}
	if b.Columns[0].Stage.Key != "docs_pending" || b.Columns[1].Stage.Key != "retainer_signed" {
		t.Fatalf("column order wrong: %#v", b.Columns)
	}
	if len(b.Columns[0].Leads) != 1 || b.Columns[0].Leads[0].ID != docs.ID {
		t.Fatalf("docs column wrong: %#v", b.Columns[0].Leads)
	}
	if len(b.Columns[1].Leads) != 1 || b.Columns[1].Leads[0].ID != signed.ID {
		t.Fatalf("signed column wrong: %#v", b.Columns[1].Leads)
	}
}

func TestSnapshotDefaultsUnresolvedLeadsToFirstColumn(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedStages(t, store, "New", "Retainer Signed")

	ctx := context.Background()
	lead := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Mystery Lead",
		Status:       "Imported From Spreadsheet",
	})

	b, err := board.Snapshot(ctx, store)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	first := b.Columns[0]
	if len(first.Leads) != 1 || first.Leads[0].ID != lead.ID {
		t.Fatalf("unresolved lead should land in first column, got %#v", first.Leads)
	}
}

func TestReasonsDeduplicatesAtViewEdge(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedStages(t, store,
		"Docs Pending - A",
		"Docs Pending - B",
		"Docs Pending - A",
	)

	b, err := board.Snapshot(context.Background(), store)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	column := b.ColumnByKey("docs_pending")
	if column == nil {
		t.Fatal("missing docs_pending column")
	}
	// Taxonomy keeps the duplicate.
	if !reflect.DeepEqual(column.Stage.Reasons, []string{"A", "B", "A"}) {
		t.Fatalf("underlying reasons = %#v", column.Stage.Reasons)
	}
	if got := board.Reasons(b, "docs_pending", 0); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("Reasons = %#v", got)
	}
	if got := board.Reasons(b, "docs_pending", 1); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("limited Reasons = %#v", got)
	}
}

func TestMoveRewritesStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedStages(t, store, "New", "Docs Pending - Police Report Pending")

	ctx := context.Background()
	lead := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Mover"})

	moved, err := board.Move(ctx, store, lead.ID, "docs_pending", "Wage Statement Pending")
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if moved.Status != "Docs Pending - Wage Statement Pending" {
		t.Fatalf("status = %q", moved.Status)
	}

	b, err := board.Snapshot(ctx, store)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	column := b.ColumnByKey("docs_pending")
	if column == nil || len(column.Leads) != 1 || column.Leads[0].ID != lead.ID {
		t.Fatalf("moved lead should appear in target column: %#v", column)
	}
}

func TestMoveWithoutReasonUsesBareLabel(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedStages(t, store, "New", "Retainer Signed")

	lead := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Closer"})
	moved, err := board.Move(context.Background(), store, lead.ID, "retainer_signed", "")
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if moved.Status != "Retainer Signed" {
		t.Fatalf("status = %q", moved.Status)
	}
}

func TestMoveValidatesStageAndLead(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedStages(t, store, "New")

	lead := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Check"})

	if _, err := board.Move(context.Background(), store, lead.ID, "no_such_stage", ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := board.Move(context.Background(), store, 9999, "new", ""); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
