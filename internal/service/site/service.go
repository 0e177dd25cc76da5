package site

import (
	"context"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	siteRepo site.SiteRepository
}

func NewSiteService(siteRepo site.SiteRepository) site.SiteService {
	return &SiteServiceImpl{siteRepo: siteRepo}
}

func toSiteResponse(s site.Site) site.SiteResponse {
	resp := site.SiteResponse{
		ID:         s.ID,
		Name:       s.Name,
		Location:   s.Location,
		ClientName: s.ClientName,
		Status:     string(s.Status),
	}
	if s.StartDate != nil {
		start := s.StartDate.Format("2006-01-02")
		resp.StartDate = &start
	}
	return resp
}

func toProgressResponse(p site.ProgressUpdate) site.ProgressResponse {
	return site.ProgressResponse{
		ID:                p.ID,
		SiteID:            p.SiteID,
		UpdateDate:        p.UpdateDate.Format("2006-01-02"),
		Description:       p.Description,
		CompletionPercent: p.CompletionPercent,
	}
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	var startDate *time.Time
	if req.StartDate != nil {
		d, _ := time.Parse("2006-01-02", *req.StartDate)
		startDate = &d
	}

	created, err := s.siteRepo.Create(ctx, site.Site{
		Name:       req.Name,
		Location:   req.Location,
		ClientName: req.ClientName,
		StartDate:  startDate,
		Status:     site.SiteStatus(req.Status),
	})
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	return toSiteResponse(created), nil
}

// GetByID implements site.SiteService.
func (s *SiteServiceImpl) GetByID(ctx context.Context, id string) (site.SiteResponse, error) {
	st, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return toSiteResponse(st), nil
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context) ([]site.SiteResponse, error) {
	sites, err := s.siteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, toSiteResponse(st))
	}
	return responses, nil
}

// Update implements site.SiteService.
func (s *SiteServiceImpl) Update(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	if err := s.siteRepo.Update(ctx, req); err != nil {
		return site.SiteResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements site.SiteService.
func (s *SiteServiceImpl) Delete(ctx context.Context, id string) error {
	return s.siteRepo.Delete(ctx, id)
}

// AddProgress implements site.SiteService.
func (s *SiteServiceImpl) AddProgress(ctx context.Context, req site.AddProgressRequest) (site.ProgressResponse, error) {
	if err := req.Validate(); err != nil {
		return site.ProgressResponse{}, err
	}

	if _, err := s.siteRepo.GetByID(ctx, req.SiteID); err != nil {
		return site.ProgressResponse{}, err
	}

	updateDate, _ := time.Parse("2006-01-02", req.UpdateDate)

	created, err := s.siteRepo.AddProgress(ctx, site.ProgressUpdate{
		SiteID:            req.SiteID,
		UpdateDate:        updateDate,
		Description:       req.Description,
		CompletionPercent: req.CompletionPercent,
	})
	if err != nil {
		return site.ProgressResponse{}, fmt.Errorf("failed to add progress update: %w", err)
	}

	return toProgressResponse(created), nil
}

// ListProgress implements site.SiteService.
func (s *SiteServiceImpl) ListProgress(ctx context.Context, siteID string) ([]site.ProgressResponse, error) {
	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	updates, err := s.siteRepo.ListProgress(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress updates: %w", err)
	}

	responses := make([]site.ProgressResponse, 0, len(updates))
	for _, p := range updates {
		responses = append(responses, toProgressResponse(p))
	}
	return responses, nil
}

// DeleteProgress implements site.SiteService.
func (s *SiteServiceImpl) DeleteProgress(ctx context.Context, siteID, progressID string) error {
	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		return err
	}
	return s.siteRepo.DeleteProgress(ctx, progressID)
}
