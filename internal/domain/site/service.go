package site

import "context"

type SiteService interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetByID(ctx context.Context, id string) (SiteResponse, error)
	List(ctx context.Context) ([]SiteResponse, error)
	Update(ctx context.Context, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, id string) error

	AddProgress(ctx context.Context, req AddProgressRequest) (ProgressResponse, error)
	ListProgress(ctx context.Context, siteID string) ([]ProgressResponse, error)
	DeleteProgress(ctx context.Context, siteID, progressID string) error
}
