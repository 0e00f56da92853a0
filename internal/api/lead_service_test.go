package api_test

import (
	"context"
	"errors"
	"testing"

	"leadstage/internal/api"
	"leadstage/internal/leadstore"
	"leadstage/internal/services"
	"leadstage/internal/testsupport"
)

func newService(t *testing.T) (*api.LeadService, *leadstore.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return api.NewLeadService(store), store
}

func TestAddAndDescribeLead(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, api.AddLeadRequest{
		CustomerName: "jane doe",
		PhoneNumber:  "(555) 867-5309",
		Status:       "Docs Pending - Police Report Pending",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.CustomerName != "Jane Doe" {
		t.Fatalf("name = %q", added.CustomerName)
	}
	if added.ParentKey != "docs_pending" {
		t.Fatalf("parentKey = %q", added.ParentKey)
	}
	if added.Reason != "Police Report Pending" {
		t.Fatalf("reason = %q", added.Reason)
	}

	got, err := svc.Describe(ctx, added.ID)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if got == nil || got.CorrelationID != added.CorrelationID {
		t.Fatalf("Describe mismatch: %#v", got)
	}
}

func TestAddRequiresCustomerName(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Add(context.Background(), api.AddLeadRequest{}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMoveThroughService(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	testsupport.SeedStages(t, store, "New", "Retainer Signed")

	added, err := svc.Add(ctx, api.AddLeadRequest{CustomerName: "Move Me"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	moved, err := svc.Move(ctx, added.ID, api.MoveLeadRequest{ParentKey: "retainer_signed"})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if moved.Status != "Retainer Signed" || moved.ParentKey != "retainer_signed" {
		t.Fatalf("unexpected moved lead: %#v", moved)
	}

	if _, err := svc.Move(ctx, added.ID, api.MoveLeadRequest{}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty parentKey, got %v", err)
	}
}

func TestBoardViewMergesColumns(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	testsupport.SeedStages(t, store, "Docs Pending - A", "Docs Pending - B", "Closed")

	if _, err := svc.Add(ctx, api.AddLeadRequest{CustomerName: "Col Test", Status: "Docs Pending - B"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	view, err := svc.Board(ctx)
	if err != nil {
		t.Fatalf("Board failed: %v", err)
	}
	if len(view.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(view.Columns))
	}
	docs := view.Columns[0]
	if docs.Stage.Key != "docs_pending" || len(docs.Stage.Reasons) != 2 {
		t.Fatalf("unexpected first column: %#v", docs.Stage)
	}
	if len(docs.Leads) != 1 || docs.Leads[0].Reason != "B" {
		t.Fatalf("unexpected column leads: %#v", docs.Leads)
	}
}

func TestRemoveMissingLead(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Remove(context.Background(), 42); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestStagesAndAddStage(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	testsupport.SeedStages(t, store, "New")

	stages, err := svc.AddStage(ctx, "Cold Storage", "col-gray", "hdr-gray")
	if err != nil {
		t.Fatalf("AddStage failed: %v", err)
	}
	if len(stages) != 2 || stages[1].Key != "cold_storage" {
		t.Fatalf("unexpected stages: %#v", stages)
	}

	if _, err := svc.AddStage(ctx, "   ", "", ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
