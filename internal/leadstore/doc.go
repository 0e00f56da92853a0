// Package leadstore persists leads and stage records in SQLite.
//
// The Store manages database connections, schema initialization, migrations,
// and lead CRUD. Two tables matter: stage_records holds the flat collection
// of composite status labels the taxonomy derives parent stages from, and
// leads holds the leads themselves with their current composite status
// string. Stage records are seeded with the default call-center stages on
// first open so a fresh install renders a usable board.
//
// Treat this package as the single source of truth for persistence
// semantics; when adding columns, update schema.sql, bump schemaVersion, and
// add an additive migration.
package leadstore
