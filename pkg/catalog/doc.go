// Package catalog holds the static list of purchasable offerings the
// storefront exposes on its pricing page.
//
// Each entry is keyed by the price identifier assigned by the external
// payment processor; that identifier is the join key between catalog entries
// and entitlement records. The catalog is immutable for the process lifetime
// and guarantees price ID uniqueness at construction.
//
// Entries can be declared in code via NewStaticSource or loaded from a YAML
// file via NewYAMLSource.
package catalog
