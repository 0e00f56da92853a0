package api

import (
	"context"
	"strings"

	"leadstage/internal/board"
	"leadstage/internal/leadstore"
	"leadstage/internal/services"
	"leadstage/internal/stagetaxonomy"
)

// LeadService exposes lead and board operations returning API DTOs.
type LeadService struct {
	store *leadstore.Store
}

// NewLeadService constructs a LeadService around the provided store.
func NewLeadService(store *leadstore.Store) *LeadService {
	if store == nil {
		return nil
	}
	return &LeadService{store: store}
}

// AddLeadRequest carries intake fields for a new lead.
type AddLeadRequest struct {
	CustomerName  string `json:"customerName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	State         string `json:"state"`
	LeadVendor    string `json:"leadVendor"`
	AssignedAgent string `json:"assignedAgent"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

// MoveLeadRequest carries a board move.
type MoveLeadRequest struct {
	ParentKey string `json:"parentKey"`
	Reason    string `json:"reason"`
}

func (s *LeadService) taxonomy(ctx context.Context) ([]stagetaxonomy.StageRecord, []stagetaxonomy.ParentStage, error) {
	stages, err := s.store.ListStageRecords(ctx)
	if err != nil {
		return nil, nil, err
	}
	records := leadstore.TaxonomyRecords(stages)
	return records, stagetaxonomy.DeriveParentStages(records), nil
}

// List returns leads, optionally filtered by exact status labels.
func (s *LeadService) List(ctx context.Context, statuses ...string) ([]Lead, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	records, parents, err := s.taxonomy(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.store.List(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	out := make([]Lead, 0, len(leads))
	for _, lead := range leads {
		out = append(out, FromLead(lead, records, parents))
	}
	return out, nil
}

// Describe fetches a single lead. A missing lead returns (nil, nil).
func (s *LeadService) Describe(ctx context.Context, id int64) (*Lead, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	lead, err := s.store.GetByID(ctx, id)
	if err != nil || lead == nil {
		return nil, err
	}
	records, parents, err := s.taxonomy(ctx)
	if err != nil {
		return nil, err
	}
	dto := FromLead(lead, records, parents)
	return &dto, nil
}

// Add validates and inserts a new lead.
func (s *LeadService) Add(ctx context.Context, req AddLeadRequest) (*Lead, error) {
	if s == nil || s.store == nil {
		return nil, services.Wrap(services.ErrConfiguration, "api", "add lead", "no store", nil)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, services.Wrap(services.ErrValidation, "api", "add lead", "customer name is required", nil)
	}
	lead, err := s.store.NewLead(ctx, leadstore.NewLeadParams{
		CustomerName:  req.CustomerName,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		State:         req.State,
		LeadVendor:    req.LeadVendor,
		AssignedAgent: req.AssignedAgent,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "api", "add lead", "insert", err)
	}
	records, parents, err := s.taxonomy(ctx)
	if err != nil {
		return nil, err
	}
	dto := FromLead(lead, records, parents)
	return &dto, nil
}

// Move relocates a lead to another parent stage with an optional reason.
func (s *LeadService) Move(ctx context.Context, id int64, req MoveLeadRequest) (*Lead, error) {
	if s == nil || s.store == nil {
		return nil, services.Wrap(services.ErrConfiguration, "api", "move lead", "no store", nil)
	}
	if strings.TrimSpace(req.ParentKey) == "" {
		return nil, services.Wrap(services.ErrValidation, "api", "move lead", "parentKey is required", nil)
	}
	lead, err := board.Move(ctx, s.store, id, strings.TrimSpace(req.ParentKey), req.Reason)
	if err != nil {
		return nil, err
	}
	records, parents, err := s.taxonomy(ctx)
	if err != nil {
		return nil, err
	}
	dto := FromLead(lead, records, parents)
	return &dto, nil
}

// Remove deletes a lead.
func (s *LeadService) Remove(ctx context.Context, id int64) error {
	if s == nil || s.store == nil {
		return services.Wrap(services.ErrConfiguration, "api", "remove lead", "no store", nil)
	}
	lead, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return services.Wrap(services.ErrNotFound, "api", "remove lead", "no such lead", nil)
	}
	return s.store.Remove(ctx, id)
}

// Board returns the current kanban snapshot.
func (s *LeadService) Board(ctx context.Context) (BoardView, error) {
	if s == nil || s.store == nil {
		return BoardView{}, nil
	}
	snapshot, err := board.Snapshot(ctx, s.store)
	if err != nil {
		return BoardView{}, err
	}
	return FromBoard(snapshot), nil
}

// Stages returns the derived parent stages in board order.
func (s *LeadService) Stages(ctx context.Context) ([]StageInfo, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	_, parents, err := s.taxonomy(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StageInfo, 0, len(parents))
	for _, parent := range parents {
		out = append(out, FromParentStage(parent))
	}
	return out, nil
}

// AddStage appends a new stage record to the collection.
func (s *LeadService) AddStage(ctx context.Context, label, columnClass, headerClass string) ([]StageInfo, error) {
	if s == nil || s.store == nil {
		return nil, services.Wrap(services.ErrConfiguration, "api", "add stage", "no store", nil)
	}
	if strings.TrimSpace(label) == "" {
		return nil, services.Wrap(services.ErrValidation, "api", "add stage", "label is required", nil)
	}
	if _, err := s.store.AppendStageRecord(ctx, label, columnClass, headerClass); err != nil {
		return nil, services.Wrap(services.ErrTransient, "api", "add stage", "insert", err)
	}
	return s.Stages(ctx)
}
