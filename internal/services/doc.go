// Package services defines the shared error vocabulary for lead-management
// components.
//
// Sentinel markers classify failures (validation, configuration, not found,
// transient) so API handlers and CLI commands can map them to responses
// without string matching. Wrap attaches component and operation context
// while preserving the marker for errors.Is checks.
package services
