package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/repository"
	"github.com/neexbeast/amadeus/internal/service"
)

func TestRegionService_Get(t *testing.T) {
	repo := &fakeRegions{
		fetchByIDFn: func(_ context.Context, id int64) (*model.Region, error) {
			if id == 1 {
				return &model.Region{ID: 1, Name: "Paris", Population: -1}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewRegionService(repo)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Name)
	assert.Equal(t, 0, got.Population)
	assert.Equal(t, "français", got.Language)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRegionService_StorageFault(t *testing.T) {
	cause := errors.New("connection refused")
	repo := &fakeRegions{
		fetchByIDFn: func(_ context.Context, _ int64) (*model.Region, error) { return nil, cause },
		fetchAllFn:  func(_ context.Context) ([]model.Region, error) { return nil, cause },
		deleteFn:    func(_ context.Context, _ int64) (bool, error) { return false, cause },
	}
	svc := service.NewRegionService(repo)

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.ErrorIs(t, err, cause)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, service.ErrStorage)

	err = svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestRegionService_List(t *testing.T) {
	repo := &fakeRegions{
		fetchAllFn: func(_ context.Context) ([]model.Region, error) { return nil, nil },
	}
	got, err := service.NewRegionService(repo).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRegionService_FindByName(t *testing.T) {
	repo := &fakeRegions{
		fetchByNameFn: func(_ context.Context, name string) (*model.Region, error) {
			if name == "Nice" {
				return &model.Region{ID: 5, Name: "Nice"}, nil
			}
			return nil, nil
		},
	}
	svc := service.NewRegionService(repo)

	got, err := svc.FindByName(context.Background(), " Nice ")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)

	_, err = svc.FindByName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.FindByName(context.Background(), "  ")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestRegionService_Create_RequiresName(t *testing.T) {
	repo := &fakeRegions{
		createFn: func(_ context.Context, _ model.RegionPatch) (*model.Region, error) {
			t.Fatal("adapter must not be called without a name")
			return nil, nil
		},
	}
	svc := service.NewRegionService(repo)

	for _, patch := range []model.RegionPatch{{}, {Name: ptr("   ")}} {
		_, err := svc.Create(context.Background(), patch)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name is required", verr.Error())
	}
}

func TestRegionService_Create_ValidatesFields(t *testing.T) {
	repo := &fakeRegions{
		createFn: func(_ context.Context, _ model.RegionPatch) (*model.Region, error) {
			t.Fatal("adapter must not be called with invalid input")
			return nil, nil
		},
	}
	svc := service.NewRegionService(repo)

	cases := []struct {
		patch model.RegionPatch
		field string
	}{
		{model.RegionPatch{Name: ptr("Rennes"), Population: ptr(-5)}, "population"},
		{model.RegionPatch{Name: ptr("Rennes"), Latitude: ptr(91.0)}, "latitude"},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), tc.patch)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestRegionService_Create_Conflict(t *testing.T) {
	repo := &fakeRegions{
		createFn: func(_ context.Context, _ model.RegionPatch) (*model.Region, error) {
			return nil, fmt.Errorf("inserting region: %w", repository.ErrDuplicateName)
		},
	}
	_, err := service.NewRegionService(repo).Create(context.Background(), model.RegionPatch{Name: ptr("Paris")})
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.NotErrorIs(t, err, service.ErrStorage)
}

func TestRegionService_Update(t *testing.T) {
	repo := &fakeRegions{
		updateFn: func(_ context.Context, id int64, patch model.RegionPatch) (*model.Region, error) {
			if id != 2 {
				return nil, nil
			}
			return &model.Region{ID: 2, Name: "Lyon", Population: *patch.Population, Language: "français", Country: "France"}, nil
		},
	}
	svc := service.NewRegionService(repo)

	got, err := svc.Update(context.Background(), 2, model.RegionPatch{Population: ptr(600000)})
	require.NoError(t, err)
	assert.Equal(t, 600000, got.Population)

	_, err = svc.Update(context.Background(), 42, model.RegionPatch{Population: ptr(1)})
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Update(context.Background(), 2, model.RegionPatch{Name: ptr("")})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRegionService_Delete(t *testing.T) {
	repo := &fakeRegions{
		deleteFn: func(_ context.Context, id int64) (bool, error) { return id == 1, nil },
	}
	svc := service.NewRegionService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), service.ErrNotFound)
}

func TestRegionService_WithMemoryAdapter(t *testing.T) {
	svc := service.NewRegionService(repository.NewRegionMemory(repository.FixtureRegions()...))
	ctx := context.Background()

	created, err := svc.Create(ctx, model.RegionPatch{Name: ptr("Rennes")})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Population)
	assert.Equal(t, "français", created.Language)
	assert.Equal(t, "France", created.Country)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
