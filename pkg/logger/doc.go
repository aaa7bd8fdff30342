// Package logger builds configured log/slog loggers for the storefront.
//
// It provides environment presets (development text logs, production JSON
// logs) and a small set of attribute helpers for the identifiers that appear
// throughout the codebase (user IDs, price IDs, component names).
package logger
