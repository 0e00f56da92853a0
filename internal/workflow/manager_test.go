package workflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadstage/internal/leadstore"
	"leadstage/internal/logging"
	"leadstage/internal/services"
	"leadstage/internal/testsupport"
	"leadstage/internal/workflow"
)

func backdateContact(t *testing.T, store *leadstore.Store, lead *leadstore.Lead, age time.Duration) {
	t.Helper()
	stamp := time.Now().UTC().Add(-age)
	lead.LastContactAt = &stamp
	if err := store.Update(context.Background(), lead); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestSweepOnceMovesStaleActiveLeads(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	stale := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Stale Lead",
		Status:       "In Progress - Attempting Contact",
	})
	backdateContact(t, store, stale, time.Duration(cfg.Workflow.StaleAfterHours+1)*time.Hour)

	fresh := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Fresh Lead",
		Status:       "In Progress - Callback Scheduled",
	})

	mgr := workflow.NewManager(cfg, store, logging.NewNop())
	moved, err := mgr.SweepOnce(ctx)
	if err != nil {
		t.Fatalf("SweepOnce failed: %v", err)
	}
	if moved != 1 {
		t.Fatalf("moved = %d, want 1", moved)
	}

	got, err := store.GetByID(ctx, stale.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	want := cfg.Workflow.FollowupStage + " - " + workflow.FollowupReason
	if got.Status != want {
		t.Fatalf("stale lead status = %q, want %q", got.Status, want)
	}
	if got.LastContactAt == nil || time.Since(*got.LastContactAt) > time.Minute {
		t.Fatalf("expected contact timestamp refreshed, got %v", got.LastContactAt)
	}

	untouched, err := store.GetByID(ctx, fresh.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if untouched.Status != fresh.Status {
		t.Fatalf("fresh lead status changed to %q", untouched.Status)
	}
}

func TestSweepOnceSkipsInactiveStages(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	signed := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Already Signed",
		Status:       "Retainer Signed",
	})
	backdateContact(t, store, signed, 30*24*time.Hour)

	parked := testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Already Parked",
		Status:       cfg.Workflow.FollowupStage,
	})
	backdateContact(t, store, parked, 30*24*time.Hour)

	mgr := workflow.NewManager(cfg, store, logging.NewNop())
	moved, err := mgr.SweepOnce(ctx)
	if err != nil {
		t.Fatalf("SweepOnce failed: %v", err)
	}
	if moved != 0 {
		t.Fatalf("moved = %d, want 0", moved)
	}

	got, err := store.GetByID(ctx, signed.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != "Retainer Signed" {
		t.Fatalf("inactive lead moved to %q", got.Status)
	}
}

func TestSweepOnceRequiresFollowupStageRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFollowupStage("Unknown Stage"))
	store := testsupport.MustOpenStore(t, cfg)

	mgr := workflow.NewManager(cfg, store, logging.NewNop())
	if _, err := mgr.SweepOnce(context.Background()); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestStartStopAndStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	mgr := workflow.NewManager(cfg, store, logging.NewNop())
	if err := mgr.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := mgr.Start(context.Background()); err == nil {
		t.Fatal("expected second Start to fail")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		status := mgr.Status()
		if !status.LastSweep.IsZero() {
			if !status.Running {
				t.Fatal("expected running status")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("sweep never recorded")
		}
		time.Sleep(10 * time.Millisecond)
	}

	mgr.Stop()
	if mgr.Status().Running {
		t.Fatal("expected stopped status")
	}
	mgr.Stop() // second stop is a no-op
}

func TestStartRejectsEmptyActiveStages(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithActiveStages())
	store := testsupport.MustOpenStore(t, cfg)

	mgr := workflow.NewManager(cfg, store, logging.NewNop())
	if err := mgr.Start(context.Background()); err == nil {
		t.Fatal("expected Start to fail without active stages")
	}
}
