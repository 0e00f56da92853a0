package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leadstage/internal/board"
	"leadstage/internal/leadstore"
	"leadstage/internal/logging"
	"leadstage/internal/services"
	"leadstage/internal/stagetaxonomy"
)

// SweepOnce performs a single follow-up sweep and returns how many leads it
// moved. Leads already sitting in the follow-up stage are left alone.
func (m *Manager) SweepOnce(ctx context.Context) (int, error) {
	sweepID := uuid.NewString()
	logger := m.logger.With(logging.String(logging.FieldSweepID, sweepID))

	stages, err := m.store.ListStageRecords(ctx)
	if err != nil {
		return 0, services.Wrap(services.ErrTransient, "workflow", "sweep", "list stage records", err)
	}
	records := leadstore.TaxonomyRecords(stages)
	parents := stagetaxonomy.DeriveParentStages(records)

	followupKey := stagetaxonomy.SlugifyParent(m.cfg.Workflow.FollowupStage)
	if !hasParent(parents, followupKey) {
		return 0, services.Wrap(services.ErrConfiguration, "workflow", "sweep",
			"follow-up stage "+m.cfg.Workflow.FollowupStage+" has no matching stage record", nil)
	}

	active := make(map[string]struct{}, len(m.cfg.Workflow.ActiveStages))
	for _, label := range m.cfg.Workflow.ActiveStages {
		active[stagetaxonomy.SlugifyParent(label)] = struct{}{}
	}

	cutoff := time.Now().Add(-m.staleAfter)
	leads, err := m.store.ListStale(ctx, cutoff)
	if err != nil {
		return 0, services.Wrap(services.ErrTransient, "workflow", "sweep", "list stale leads", err)
	}

	moved := 0
	for _, lead := range leads {
		if ctx.Err() != nil {
			return moved, ctx.Err()
		}
		parentKey := stagetaxonomy.DeriveParentKey(lead.Status, records, parents)
		if parentKey == followupKey {
			continue
		}
		if _, ok := active[parentKey]; !ok {
			continue
		}
		leadCtx := services.WithLeadID(ctx, lead.ID)
		leadLogger := logging.WithContext(leadCtx, logger)
		if _, err := board.Move(leadCtx, m.store, lead.ID, followupKey, FollowupReason); err != nil {
			leadLogger.Warn("failed to move stale lead", logging.Error(err))
			continue
		}
		moved++
		leadLogger.Info("moved stale lead to follow-up",
			logging.String(logging.FieldStage, lead.Status),
			logging.String(logging.FieldCorrelationID, lead.CorrelationID),
		)
	}

	if moved > 0 {
		logger.Info("follow-up sweep complete",
			logging.Int("candidates", len(leads)),
			logging.Int("moved", moved),
		)
	}
	return moved, nil
}

func hasParent(parents []stagetaxonomy.ParentStage, key string) bool {
	for _, parent := range parents {
		if parent.Key == key {
			return true
		}
	}
	return false
}
