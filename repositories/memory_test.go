package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-cms/models"
)

func TestMemoryRepository_CreateAssignsIDsAndTimestamps(t *testing.T) {
	repo := NewMemoryRepository[models.Milestone](models.MilestoneSchema)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.Milestone{Title: "Inception", Description: "d", Year: "2021"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, models.Milestone{Base: models.Base{ID: 99}, Title: "Growth", Description: "d", Year: "2022"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestMemoryRepository_ListOrder(t *testing.T) {
	repo := NewMemoryRepository[models.TeamMember](models.TeamMemberSchema)
	ctx := context.Background()

	for _, m := range []models.TeamMember{
		{Name: "C", Role: "r", Bio: "b", DisplayOrder: 2},
		{Name: "A", Role: "r", Bio: "b", DisplayOrder: 1},
		{Name: "B", Role: "r", Bio: "b", DisplayOrder: 1},
	} {
		_, err := repo.Create(ctx, m)
		require.NoError(t, err)
	}

	members, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestMemoryRepository_UpdateKeepsCreatedAt(t *testing.T) {
	repo := NewMemoryRepository[models.HeroStat](models.HeroStatSchema)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	ctx := context.Background()

	created, err := repo.Create(ctx, models.HeroStat{Value: "50+", Label: "Projects"})
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	updated, err := repo.Update(ctx, created.ID, models.HeroStat{Value: "60+", Label: "Projects"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "60+", updated.Value)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryRepository[models.HeroStat](models.HeroStatSchema)
	_, err := repo.Update(context.Background(), 5, models.HeroStat{Value: "1", Label: "x"})
	assert.True(t, models.IsNotFound(err))
}

func TestMemoryRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository[models.HeroStat](models.HeroStatSchema)
	ctx := context.Background()

	stat, err := repo.Create(ctx, models.HeroStat{Value: "1", Label: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, stat.ID))
	require.NoError(t, repo.Delete(ctx, stat.ID))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Get(ctx, stat.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository[models.PricingPackage](models.PricingPackageSchema)
	ctx := context.Background()

	pkg, err := repo.Create(ctx, models.PricingPackage{Name: "Pro", Price: "$9", Description: "d", Features: []string{"a", "b"}})
	require.NoError(t, err)

	pkg.Features[0] = "mutated"
	stored, err := repo.Get(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", stored.Features[0])
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository[models.HeroStat](models.HeroStatSchema)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := repo.List(ctx)
	var timeoutErr *models.TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}

func TestMemorySettingRepository(t *testing.T) {
	repo := NewMemorySettingRepository()
	ctx := context.Background()

	flags, err := repo.Get(ctx, models.ServiceStatusKey)
	require.NoError(t, err)
	assert.Empty(t, flags)

	require.NoError(t, repo.Put(ctx, models.ServiceStatusKey, models.Flags{"web": true}))
	flags, err = repo.Get(ctx, models.ServiceStatusKey)
	require.NoError(t, err)
	assert.Equal(t, models.Flags{"web": true}, flags)

	flags["web"] = false
	again, err := repo.Get(ctx, models.ServiceStatusKey)
	require.NoError(t, err)
	assert.True(t, again["web"])
}
