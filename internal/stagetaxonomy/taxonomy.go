package stagetaxonomy

import "strings"

// Separator joins a parent stage label and a reason into a composite status
// label. ParseLabel and BuildStatusLabel must agree on this value so that the
// two remain inverses of each other.
const Separator = " - "

// StageRecord is one row of the persisted stage collection. Labels may be
// composite or plain; the class fields are styling hints passed through to
// the derived parent untouched.
type StageRecord struct {
	Label       string
	ColumnClass string
	HeaderClass string
}

// ParentStage is a derived top-level grouping of one or more stage records.
// Values are rebuilt from the current record collection on every derivation;
// they carry no identity beyond the slug key.
type ParentStage struct {
	Key         string
	Label       string
	ColumnClass string
	HeaderClass string
	Reasons     []string
}

// ParseLabel splits a composite status label on the first occurrence of
// Separator. When the separator is absent the whole label (unchanged,
// whitespace included) is the parent and ok is false. Any further separator
// occurrences stay verbatim inside the reason.
func ParseLabel(label string) (parent, reason string, ok bool) {
	before, after, found := strings.Cut(label, Separator)
	if !found {
		return label, "", false
	}
	return before, after, true
}

// BuildStatusLabel is the inverse of ParseLabel: it reattaches a reason to a
// parent label. An empty reason returns the parent label unchanged.
func BuildStatusLabel(parentLabel, reason string) string {
	if reason == "" {
		return parentLabel
	}
	return parentLabel + Separator + reason
}

// SlugifyParent normalizes a parent display name into its key: lowercased,
// every maximal run of characters outside [a-z0-9] collapsed to a single
// underscore, leading and trailing underscores trimmed. The result is
// idempotent and may be empty when the name has no alphanumeric characters.
func SlugifyParent(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	gap := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('_')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}

// DeriveParentStages folds an ordered record collection into parent stages.
// It makes exactly one stable pass: a parent is created the first time its
// key appears (first occurrence wins the display label and class hints), and
// non-empty reasons accumulate in encounter order without deduplication. The
// returned sequence preserves key first-encounter order.
func DeriveParentStages(records []StageRecord) []ParentStage {
	parents := make([]ParentStage, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		parent, reason, hasReason := ParseLabel(rec.Label)
		key := SlugifyParent(parent)
		i, seen := index[key]
		if !seen {
			i = len(parents)
			index[key] = i
			parents = append(parents, ParentStage{
				Key:         key,
				Label:       parent,
				ColumnClass: rec.ColumnClass,
				HeaderClass: rec.HeaderClass,
			})
		}
		if hasReason && reason != "" {
			parents[i].Reasons = append(parents[i].Reasons, reason)
		}
	}
	return parents
}

// DeriveParentKey resolves an arbitrary, possibly free-typed status value to
// the key of the parent stage it belongs to. Resolution runs three tiers in
// order:
//
//  1. the trimmed status exactly matches a record label, in which case that
//     record's label is authoritative and its parsed parent wins even when
//     the stored label carries quirks the status does not;
//  2. the trimmed status parses directly to a parent whose key already
//     exists in parents;
//  3. the first parent's key as a positional default, or "" when parents is
//     empty.
func DeriveParentKey(status string, records []StageRecord, parents []ParentStage) string {
	trimmed := strings.TrimSpace(status)

	for _, rec := range records {
		if rec.Label == trimmed {
			parent, _, _ := ParseLabel(rec.Label)
			return SlugifyParent(parent)
		}
	}

	parent, _, _ := ParseLabel(trimmed)
	key := SlugifyParent(parent)
	for _, stage := range parents {
		if stage.Key == key {
			return key
		}
	}

	if len(parents) > 0 {
		return parents[0].Key
	}
	return ""
}
