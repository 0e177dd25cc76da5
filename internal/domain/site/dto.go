package site

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
)

// SiteResponse represents the response structure for a construction site.
type SiteResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	ClientName string  `json:"client_name"`
	StartDate  *string `json:"start_date,omitempty"`
	Status     string  `json:"status"`
}

// CreateSiteRequest represents the request structure for creating a site.
type CreateSiteRequest struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	ClientName string  `json:"client_name"`
	StartDate  *string `json:"start_date,omitempty"`
	Status     string  `json:"status"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}
	if r.Status == "" {
		r.Status = string(SiteStatusPlanned)
	} else if !SiteStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: planned, active, on_hold, completed",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateSiteRequest represents the request structure for updating a site.
type UpdateSiteRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Location   *string `json:"location,omitempty"`
	ClientName *string `json:"client_name,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Status != nil && !SiteStatus(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: planned, active, on_hold, completed",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProgressResponse represents the response structure for a progress update.
type ProgressResponse struct {
	ID                string `json:"id"`
	SiteID            string `json:"site_id"`
	UpdateDate        string `json:"update_date"`
	Description       string `json:"description"`
	CompletionPercent int    `json:"completion_percent"`
}

// AddProgressRequest represents the request structure for logging work progress
// against a site.
type AddProgressRequest struct {
	SiteID            string `json:"-"`
	UpdateDate        string `json:"update_date"`
	Description       string `json:"description"`
	CompletionPercent int    `json:"completion_percent"`
}

func (r *AddProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.UpdateDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "update_date",
			Message: "update_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if r.CompletionPercent < 0 || r.CompletionPercent > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "completion_percent",
			Message: "completion_percent must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
