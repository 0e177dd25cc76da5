package company

import "context"

type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) error
}
