// Package api defines wire-format types and the service layer for the HTTP
// API. It translates internal lead and board models into transport-friendly
// DTOs so consumers never couple to storage types.
//
// DTOs use camelCase JSON tags. Timestamps are RFC3339 with milliseconds.
// Parent stage keys are exposed as-is; they are already identifier-safe by
// construction.
package api
