// Package stagetaxonomy derives the two-level stage taxonomy (parent stage +
// optional reason) from the flat collection of composite status labels used
// for persistence.
//
// A composite label joins a parent display name and a free-text reason with
// the literal " - " separator ("Docs Pending - Police Report Pending").
// ParseLabel and BuildStatusLabel convert between the two shapes,
// SlugifyParent produces the stable key used to merge cosmetically different
// parent names, and DeriveParentStages folds an ordered record collection
// into the parent-stage sequence the board renders as columns.
//
// Every function is pure and total: malformed or empty input produces a
// defined (possibly degenerate) result, never an error. The separator is part
// of the persisted label format; changing it requires migrating every stored
// status value.
package stagetaxonomy
