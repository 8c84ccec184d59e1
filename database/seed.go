package database

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ascent-cms/models"
)

// SeedFile maps a collection slug to the entries to create in it
type SeedFile map[string][]map[string]interface{}

// Importer creates one entry of a collection from field values
type Importer interface {
	Schema() models.Schema
	Import(ctx context.Context, fields map[string]interface{}) (int64, error)
}

// LoadSeed reads a YAML seed file
func LoadSeed(path string) (SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("unmarshalling seed file: %w", err)
	}
	return seed, nil
}

// Seed imports every entry of the seed file, collection by collection in the
// order of importers. It stops at the first rejected entry and returns the
// number of entries created so far.
func Seed(ctx context.Context, seed SeedFile, importers []Importer, log *zap.Logger) (int, error) {
	known := make(map[string]bool, len(importers))
	for _, imp := range importers {
		known[imp.Schema().Slug] = true
	}
	for slug := range seed {
		if !known[slug] {
			return 0, fmt.Errorf("unknown collection %q in seed file", slug)
		}
	}

	created := 0
	for _, imp := range importers {
		schema := imp.Schema()
		for i, fields := range seed[schema.Slug] {
			id, err := imp.Import(ctx, fields)
			if err != nil {
				return created, fmt.Errorf("%s entry %d: %w", schema.Slug, i+1, err)
			}
			created++
			log.Debug("Seeded entry", zap.String("collection", schema.Collection), zap.Int64("id", id))
		}
	}
	return created, nil
}
