package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-cms/config"
	"github.com/ascent-cms/dto"
	"github.com/ascent-cms/events"
	"github.com/ascent-cms/models"
	"github.com/ascent-cms/repositories"
	"github.com/ascent-cms/storage"
)

func TestAuthService_LoginWithPlainKey(t *testing.T) {
	auth, err := NewAuthService(config.AuthConfig{AdminKey: "letmein", JWTSecret: "secret", SessionTTL: time.Hour})
	require.NoError(t, err)

	resp, err := auth.Login(dto.LoginRequest{Key: "letmein"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = auth.Login(dto.LoginRequest{Key: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestAuthService_LoginWithHash(t *testing.T) {
	hash, err := HashKey("s3cret-key")
	require.NoError(t, err)

	auth, err := NewAuthService(config.AuthConfig{AdminKeyHash: hash, JWTSecret: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, auth.TTL())

	_, err = auth.Login(dto.LoginRequest{Key: "s3cret-key"})
	assert.NoError(t, err)
}

func TestAuthService_RejectsForeignAndExpiredTokens(t *testing.T) {
	auth, err := NewAuthService(config.AuthConfig{AdminKey: "k", JWTSecret: "secret", SessionTTL: time.Minute})
	require.NoError(t, err)
	other, err := NewAuthService(config.AuthConfig{AdminKey: "k", JWTSecret: "other-secret"})
	require.NoError(t, err)

	foreign, _, err := other.GenerateToken()
	require.NoError(t, err)
	_, err = auth.ValidateToken(foreign)
	assert.Error(t, err)

	token, _, err := auth.GenerateToken()
	require.NoError(t, err)
	auth.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)

	_, err = auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewAuthService_RequiresSettings(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{AdminKey: "k"})
	assert.Error(t, err)
	_, err = NewAuthService(config.AuthConfig{JWTSecret: "s"})
	assert.Error(t, err)
}

func TestSettingsService(t *testing.T) {
	hub := events.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes, err := hub.Subscribe(ctx)
	require.NoError(t, err)

	svc := NewSettingsService(repositories.NewMemorySettingRepository(), ManagerDeps{Publisher: hub, Timeout: time.Second})

	statuses, err := svc.ServiceStatuses(ctx)
	require.NoError(t, err)
	assert.Len(t, statuses, len(ServiceCatalogue))
	assert.False(t, statuses["UI/UX Design"])

	statuses, err = svc.SetComingSoon(ctx, " UI/UX Design ", true)
	require.NoError(t, err)
	assert.True(t, statuses["UI/UX Design"])

	change := <-changes
	assert.Equal(t, SettingsCollection, change.Collection)

	soon, err := svc.ComingSoon(ctx, "UI/UX Design")
	require.NoError(t, err)
	assert.True(t, soon)

	statuses, err = svc.Toggle(ctx, "UI/UX Design")
	require.NoError(t, err)
	assert.False(t, statuses["UI/UX Design"])

	soon, err = svc.ComingSoon(ctx, "Unknown Service")
	require.NoError(t, err)
	assert.False(t, soon)

	_, err = svc.SetComingSoon(ctx, "  ", true)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDashboardService_Counts(t *testing.T) {
	repos := repositories.NewMemorySet()
	content := NewContent(repos, ManagerDeps{Storage: storage.NewMemoryStorage(""), Timeout: time.Second})
	ctx := context.Background()

	_, err := content.HeroStats.Save(ctx, Submission{Fields: map[string]interface{}{"value": "1", "label": "x"}})
	require.NoError(t, err)
	_, err = content.HeroStats.Save(ctx, Submission{Fields: map[string]interface{}{"value": "2", "label": "y"}})
	require.NoError(t, err)

	counts := NewDashboardService(content.Collections(), nil).Counts(ctx)
	assert.Len(t, counts, len(models.Schemas()))
	assert.Equal(t, int64(2), counts["hero-stats"])
	assert.Equal(t, int64(0), counts["team"])
}
