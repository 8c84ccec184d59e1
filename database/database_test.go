package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ascent-cms/config"
	"github.com/ascent-cms/models"
)

type fakeImporter struct {
	schema   models.Schema
	imported []map[string]interface{}
	err      error
}

func (f *fakeImporter) Schema() models.Schema { return f.schema }

func (f *fakeImporter) Import(_ context.Context, fields map[string]interface{}) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.imported = append(f.imported, fields)
	return int64(len(f.imported)), nil
}

const seedYAML = `
hero-stats:
  - value: "50+"
    label: Projects
  - value: "10"
    label: Clients
team:
  - name: Sam
    role: Engineer
    bio: Builds things
    display_order: 2
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)
	assert.Len(t, seed["hero-stats"], 2)
	assert.Equal(t, "Sam", seed["team"][0]["name"])
	assert.Equal(t, 2, seed["team"][0]["display_order"])

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSeed(writeSeed(t, "hero-stats: [unclosed"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)

	stats := &fakeImporter{schema: models.HeroStatSchema}
	team := &fakeImporter{schema: models.TeamMemberSchema}
	clients := &fakeImporter{schema: models.ClientSchema}

	created, err := Seed(context.Background(), seed, []Importer{stats, team, clients}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Len(t, stats.imported, 2)
	assert.Equal(t, "Projects", stats.imported[0]["label"])
	assert.Len(t, team.imported, 1)
	assert.Empty(t, clients.imported)
}

func TestSeed_StopsAtFirstRejection(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)

	stats := &fakeImporter{schema: models.HeroStatSchema}
	team := &fakeImporter{schema: models.TeamMemberSchema, err: &models.ValidationError{Field: "bio", Message: "is required"}}

	created, err := Seed(context.Background(), seed, []Importer{stats, team}, zap.NewNop())
	assert.Equal(t, 2, created)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "team entry 1")
}

func TestSeed_UnknownCollection(t *testing.T) {
	created, err := Seed(context.Background(), SeedFile{"blog": {{"title": "x"}}}, []Importer{&fakeImporter{schema: models.HeroStatSchema}}, zap.NewNop())
	assert.Zero(t, created)
	assert.Error(t, err)
}

func TestOpen_RequiresURL(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "postgres"}, zap.NewNop())
	assert.Error(t, err)
}

func TestGormLoggerWritesThroughZap(t *testing.T) {
	// production loggers run at info, so gorm warnings must not land at debug
	core, logs := observer.New(zapcore.InfoLevel)
	gl := NewGormLogger(zap.New(core))

	gl.Error(context.Background(), "query failed: %v", errors.New("boom"))
	gl.Warn(context.Background(), "slow query: %s", "SELECT 1")
	gl.Info(context.Background(), "ignored below the gorm log level")

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "gorm", e.LoggerName)
		assert.Equal(t, zapcore.WarnLevel, e.Level)
	}
	assert.Contains(t, entries[0].Message, "boom")
	assert.Contains(t, entries[1].Message, "slow query")
}

func TestModels(t *testing.T) {
	assert.Len(t, Models(), len(models.Schemas())+1)
}
