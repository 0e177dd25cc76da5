package company

import (
	"context"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/company"
)

type SettingsServiceImpl struct {
	settingsRepo company.SettingsRepository
}

func NewSettingsService(settingsRepo company.SettingsRepository) company.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func toSettingsResponse(s company.Settings) company.SettingsResponse {
	return company.SettingsResponse{
		Name:          s.Name,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		GSTIN:         s.GSTIN,
		BankName:      s.BankName,
		AccountNumber: s.AccountNumber,
		IFSCCode:      s.IFSCCode,
		UPIID:         s.UPIID,
	}
}

// Get implements company.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (company.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return company.SettingsResponse{}, err
	}
	return toSettingsResponse(settings), nil
}

// Update implements company.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req company.UpdateSettingsRequest) (company.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return company.SettingsResponse{}, err
	}

	if err := s.settingsRepo.Update(ctx, req); err != nil {
		return company.SettingsResponse{}, fmt.Errorf("failed to update company settings: %w", err)
	}

	return s.Get(ctx)
}
