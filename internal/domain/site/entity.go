package site

import "time"

type SiteStatus string

const (
	SiteStatusPlanned   SiteStatus = "planned"
	SiteStatusActive    SiteStatus = "active"
	SiteStatusOnHold    SiteStatus = "on_hold"
	SiteStatusCompleted SiteStatus = "completed"
)

func (s SiteStatus) Valid() bool {
	switch s {
	case SiteStatusPlanned, SiteStatusActive, SiteStatusOnHold, SiteStatusCompleted:
		return true
	}
	return false
}

type Site struct {
	ID         string
	Name       string
	Location   string
	ClientName string
	StartDate  *time.Time
	Status     SiteStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProgressUpdate is one dated entry in a site's work log. CompletionPercent
// is the overall site completion as reported on that date, 0-100.
type ProgressUpdate struct {
	ID                string
	SiteID            string
	UpdateDate        time.Time
	Description       string
	CompletionPercent int
	CreatedAt         time.Time
}
