package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context) ([]Site, error)
	Update(ctx context.Context, req UpdateSiteRequest) error
	Delete(ctx context.Context, id string) error

	AddProgress(ctx context.Context, p ProgressUpdate) (ProgressUpdate, error)
	ListProgress(ctx context.Context, siteID string) ([]ProgressUpdate, error)
	DeleteProgress(ctx context.Context, id string) error
}
