// Package pg connects the storefront to Postgres: pool construction with
// startup retries and a readiness probe for the health endpoint. Schema
// migrations for the entitlement projection live in pkg/entitlement, which
// embeds its own goose migrations.
package pg
