package board

import (
	"context"
	"strings"

	"leadstage/internal/leadstore"
	"leadstage/internal/services"
	"leadstage/internal/stagetaxonomy"
)

// Move rewrites a lead's composite status to place it under the parent stage
// identified by parentKey, with an optional reason suffix. The new status is
// built from the parent's stored display label, not from the key, so the
// persisted value stays presentable and parseable.
func Move(ctx context.Context, store *leadstore.Store, leadID int64, parentKey, reason string) (*leadstore.Lead, error) {
	stages, err := store.ListStageRecords(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "board", "move", "load stage records", err)
	}
	parents := stagetaxonomy.DeriveParentStages(leadstore.TaxonomyRecords(stages))

	var target *stagetaxonomy.ParentStage
	for i := range parents {
		if parents[i].Key == parentKey {
			target = &parents[i]
			break
		}
	}
	if target == nil {
		return nil, services.Wrap(services.ErrValidation, "board", "move", "unknown stage key "+parentKey, nil)
	}

	lead, err := store.GetByID(ctx, leadID)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "board", "move", "load lead", err)
	}
	if lead == nil {
		return nil, services.Wrap(services.ErrNotFound, "board", "move", "no such lead", nil)
	}

	lead.Status = stagetaxonomy.BuildStatusLabel(target.Label, strings.TrimSpace(reason))
	if err := store.Update(ctx, lead); err != nil {
		return nil, services.Wrap(services.ErrTransient, "board", "move", "update lead", err)
	}
	if err := store.TouchContact(ctx, lead.ID); err != nil {
		return nil, services.Wrap(services.ErrTransient, "board", "move", "touch contact", err)
	}
	return store.GetByID(ctx, lead.ID)
}
