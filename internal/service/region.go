package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
	"github.com/neexbeast/amadeus/internal/repository"
)

// RegionService exposes region records through one injected adapter.
type RegionService struct {
	repo repository.RegionRepository
}

// NewRegionService constructs a RegionService over repo.
func NewRegionService(repo repository.RegionRepository) *RegionService {
	return &RegionService{repo: repo}
}

// Get returns the region with the given id, or ErrNotFound.
func (s *RegionService) Get(ctx context.Context, id int64) (model.RegionResponse, error) {
	r, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return model.RegionResponse{}, adapterErr(fmt.Sprintf("fetching region %d", id), err)
	}
	if r == nil {
		return model.RegionResponse{}, fmt.Errorf("region %d: %w", id, ErrNotFound)
	}
	return normalize.Region(*r), nil
}

// List returns every region ordered by name.
func (s *RegionService) List(ctx context.Context) ([]model.RegionResponse, error) {
	rs, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, adapterErr("listing regions", err)
	}
	return normalize.Regions(rs), nil
}

// FindByName returns the first region loosely matching name, or ErrNotFound.
func (s *RegionService) FindByName(ctx context.Context, name string) (model.RegionResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.RegionResponse{}, &ValidationError{Field: "name", Message: "is required"}
	}

	r, err := s.repo.FetchByName(ctx, name)
	if err != nil {
		return model.RegionResponse{}, adapterErr(fmt.Sprintf("searching region %q", name), err)
	}
	if r == nil {
		return model.RegionResponse{}, fmt.Errorf("region %q: %w", name, ErrNotFound)
	}
	return normalize.Region(*r), nil
}

// Create validates the patch and stores a new region. The name is mandatory.
func (s *RegionService) Create(ctx context.Context, patch model.RegionPatch) (model.RegionResponse, error) {
	if patch.Name == nil || strings.TrimSpace(*patch.Name) == "" {
		return model.RegionResponse{}, &ValidationError{Field: "name", Message: "is required"}
	}
	if err := check(patch); err != nil {
		return model.RegionResponse{}, err
	}

	r, err := s.repo.Create(ctx, patch)
	if err != nil {
		return model.RegionResponse{}, adapterErr(fmt.Sprintf("creating region %q", *patch.Name), err)
	}
	return normalize.Region(*r), nil
}

// Update overwrites the supplied fields of region id, or returns ErrNotFound.
func (s *RegionService) Update(ctx context.Context, id int64, patch model.RegionPatch) (model.RegionResponse, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.RegionResponse{}, &ValidationError{Field: "name", Message: "must not be blank"}
	}
	if err := check(patch); err != nil {
		return model.RegionResponse{}, err
	}

	r, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return model.RegionResponse{}, adapterErr(fmt.Sprintf("updating region %d", id), err)
	}
	if r == nil {
		return model.RegionResponse{}, fmt.Errorf("region %d: %w", id, ErrNotFound)
	}
	return normalize.Region(*r), nil
}

// Delete removes region id. Deleting an unknown id returns ErrNotFound.
func (s *RegionService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return adapterErr(fmt.Sprintf("deleting region %d", id), err)
	}
	if !ok {
		return fmt.Errorf("region %d: %w", id, ErrNotFound)
	}
	return nil
}
