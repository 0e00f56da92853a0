// Package board assembles the kanban view of leads grouped by parent stage.
//
// A Snapshot derives the parent-stage columns from the persisted stage
// records and buckets every lead into a column by resolving its composite
// status through the taxonomy. Move is the single write path for dragging a
// lead between columns: it rebuilds the composite status from the target
// parent's display label plus an optional reason, so persisted statuses stay
// round-trippable.
package board
