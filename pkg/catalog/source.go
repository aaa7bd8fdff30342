package catalog

import (
	"context"
	"errors"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Source defines how catalog entries are loaded.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

type staticSource struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStaticSource returns an in-memory Source with a copy of the given entries.
// Panics if no entries are provided to ensure the storefront always has at
// least one purchasable offering.
func NewStaticSource(entries ...Entry) Source {
	if len(entries) == 0 {
		panic("catalog: at least one entry is required")
	}
	return &staticSource{entries: slices.Clone(entries)}
}

// Load returns a copy of the entries so callers cannot mutate source state.
func (s *staticSource) Load(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries), nil
}

type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source that reads entries from a YAML file.
//
// Expected document shape:
//
//	entries:
//	  - price_id: price_1QRZZqFdGKBVpgAdy4E9EsRv
//	    name: Digital Twin and MetaHuman Creation Platform
//	    description: Create hyper-realistic digital humans.
//	    mode: recurring
//	    price:
//	      amount: 500
//	      currency: GBP
func NewYAMLSource(path string) Source {
	return &yamlSource{path: path}
}

func (s *yamlSource) Load(ctx context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	var doc struct {
		Entries []Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	return doc.Entries, nil
}
