package leadstore_test

import (
	"context"
	"testing"
	"time"

	"leadstage/internal/leadstore"
	"leadstage/internal/testsupport"
)

func TestOpenSeedsStageRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	stages, err := store.ListStageRecords(context.Background())
	if err != nil {
		t.Fatalf("ListStageRecords failed: %v", err)
	}
	if len(stages) == 0 {
		t.Fatal("expected seeded stage records on first open")
	}
	if stages[0].Label != "New" {
		t.Fatalf("expected first seeded stage to be New, got %q", stages[0].Label)
	}
	for i := 1; i < len(stages); i++ {
		if stages[i].DisplayOrder < stages[i-1].DisplayOrder {
			t.Fatalf("stage records out of display order at %d: %#v", i, stages)
		}
	}
}

func TestNewLeadDefaultsAndNormalization(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	lead, err := store.NewLead(ctx, leadstore.NewLeadParams{
		CustomerName: "  maria  de la cruz ",
		PhoneNumber:  "+1 (555) 867-5309",
		State:        "tx",
	})
	if err != nil {
		t.Fatalf("NewLead failed: %v", err)
	}
	if lead.ID == 0 {
		t.Fatal("expected lead ID to be assigned")
	}
	if lead.CustomerName != "Maria De La Cruz" {
		t.Fatalf("name not normalized: %q", lead.CustomerName)
	}
	if lead.PhoneNumber != "5558675309" {
		t.Fatalf("phone not normalized: %q", lead.PhoneNumber)
	}
	if lead.State != "TX" {
		t.Fatalf("state not uppercased: %q", lead.State)
	}
	if lead.Status != "New" {
		t.Fatalf("expected first stage label as default status, got %q", lead.Status)
	}
	if lead.CorrelationID == "" {
		t.Fatal("expected correlation id")
	}
	if lead.LastContactAt == nil {
		t.Fatal("expected intake to stamp last contact")
	}

	found, err := store.FindByCorrelationID(ctx, lead.CorrelationID)
	if err != nil {
		t.Fatalf("FindByCorrelationID failed: %v", err)
	}
	if found == nil || found.ID != lead.ID {
		t.Fatalf("expected to find inserted lead, got %#v", found)
	}
}

func TestNewLeadRequiresName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.NewLead(context.Background(), leadstore.NewLeadParams{PhoneNumber: "5558675309"}); err == nil {
		t.Fatal("expected error when customer name missing")
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	lead, err := store.GetByID(context.Background(), 9999)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if lead != nil {
		t.Fatalf("expected nil for missing lead, got %#v", lead)
	}
}

func TestUpdateAndListByStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	lead := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "John Smith"})

	lead.Status = "Docs Pending - Police Report Pending"
	lead.Notes = "left voicemail"
	if err := store.Update(ctx, lead); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	matched, err := store.List(ctx, "Docs Pending - Police Report Pending")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != lead.ID {
		t.Fatalf("expected updated lead in filtered list, got %#v", matched)
	}
	if matched[0].Notes != "left voicemail" {
		t.Fatalf("notes not persisted: %q", matched[0].Notes)
	}
}

func TestListStale(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	stale := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Old Lead"})
	fresh := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Fresh Lead"})

	past := time.Now().UTC().Add(-100 * time.Hour)
	stale.LastContactAt = &past
	if err := store.Update(ctx, stale); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	leads, err := store.ListStale(ctx, time.Now().UTC().Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("ListStale failed: %v", err)
	}
	if len(leads) != 1 || leads[0].ID != stale.ID {
		t.Fatalf("expected only the stale lead, got %#v", leads)
	}
	if leads[0].ID == fresh.ID {
		t.Fatal("fresh lead must not be reported stale")
	}
}

func TestReplaceAndAppendStageRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedStages(t, store, "Queued", "Queued - Waiting On Docs", "Closed")

	stages, err := store.ListStageRecords(ctx)
	if err != nil {
		t.Fatalf("ListStageRecords failed: %v", err)
	}
	if len(stages) != 3 || stages[0].Label != "Queued" || stages[2].Label != "Closed" {
		t.Fatalf("unexpected stage collection: %#v", stages)
	}

	appended, err := store.AppendStageRecord(ctx, "Archived", "col-gray", "hdr-gray")
	if err != nil {
		t.Fatalf("AppendStageRecord failed: %v", err)
	}
	if appended.DisplayOrder <= stages[2].DisplayOrder {
		t.Fatalf("appended stage should sort last: %#v", appended)
	}

	stages, err = store.ListStageRecords(ctx)
	if err != nil {
		t.Fatalf("ListStageRecords failed: %v", err)
	}
	if stages[len(stages)-1].Label != "Archived" {
		t.Fatalf("expected Archived last, got %#v", stages)
	}
}

func TestSummaryGroupsByParentKey(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedStages(t, store, "Docs Pending - A", "Docs Pending - B", "Retainer Signed")

	a := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Lead A", Status: "Docs Pending - A"})
	b := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Lead B", Status: "Docs Pending - B"})
	testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Lead C", Status: "Retainer Signed"})
	_ = a
	_ = b

	summary, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.Total != 3 {
		t.Fatalf("total = %d", summary.Total)
	}
	if summary.ByParent["docs_pending"] != 2 {
		t.Fatalf("docs_pending = %d", summary.ByParent["docs_pending"])
	}
	if summary.ByParent["retainer_signed"] != 1 {
		t.Fatalf("retainer_signed = %d", summary.ByParent["retainer_signed"])
	}
}

func TestHealthReportsCounts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Health Check"})

	health := store.Health(context.Background())
	if health.Error != "" {
		t.Fatalf("unexpected health error: %s", health.Error)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.TableExists || !health.IntegrityCheck {
		t.Fatalf("unexpected health flags: %#v", health)
	}
	if health.TotalLeads != 1 || health.TotalStages == 0 {
		t.Fatalf("unexpected health counts: %#v", health)
	}
}

func TestRemoveLead(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	lead := testsupport.NewLead(t, store, leadstore.NewLeadParams{CustomerName: "Short Timer"})
	if err := store.Remove(ctx, lead.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	got, err := store.GetByID(ctx, lead.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected lead removed, got %#v", got)
	}
	if err := store.Remove(ctx, lead.ID); err != nil {
		t.Fatalf("removing an unknown id should not error: %v", err)
	}
}

func TestListByParentKey(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "First Docs",
		Status:       "Docs Pending - Police Report Pending",
	})
	testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Second Docs",
		Status:       "Docs Pending - Medical Records Pending",
	})
	testsupport.NewLead(t, store, leadstore.NewLeadParams{
		CustomerName: "Fresh",
		Status:       "New",
	})

	docs, err := store.ListByParentKey(ctx, "docs_pending")
	if err != nil {
		t.Fatalf("ListByParentKey failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs_pending leads, got %d", len(docs))
	}
	if docs[0].CustomerName != "First Docs" || docs[1].CustomerName != "Second Docs" {
		t.Fatalf("unexpected order: %#v", docs)
	}

	none, err := store.ListByParentKey(ctx, "no_such_key")
	if err != nil {
		t.Fatalf("ListByParentKey failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no leads for unknown key, got %d", len(none))
	}
}
