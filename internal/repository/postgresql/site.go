package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/site"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type siteRepositoryImpl struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepositoryImpl{db: db}
}

// Create implements site.SiteRepository.
func (r *siteRepositoryImpl) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (id, name, location, client_name, start_date, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Name,
		s.Location,
		s.ClientName,
		s.StartDate,
		s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepositoryImpl) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, client_name, start_date, status, created_at, updated_at
		FROM sites
		WHERE id = $1
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Location,
		&s.ClientName,
		&s.StartDate,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

// List implements site.SiteRepository.
func (r *siteRepositoryImpl) List(ctx context.Context) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, client_name, start_date, status, created_at, updated_at
		FROM sites
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Location,
			&s.ClientName,
			&s.StartDate,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sites, nil
}

// Update implements site.SiteRepository.
func (r *siteRepositoryImpl) Update(ctx context.Context, req site.UpdateSiteRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE sites SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Location != nil {
		query += fmt.Sprintf(", location = $%d", argIdx)
		args = append(args, *req.Location)
		argIdx++
	}
	if req.ClientName != nil {
		query += fmt.Sprintf(", client_name = $%d", argIdx)
		args = append(args, *req.ClientName)
		argIdx++
	}
	if req.StartDate != nil {
		query += fmt.Sprintf(", start_date = $%d", argIdx)
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.Status != nil {
		query += fmt.Sprintf(", status = $%d", argIdx)
		args = append(args, *req.Status)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update site: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

// Delete implements site.SiteRepository.
func (r *siteRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM sites WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

// AddProgress implements site.SiteRepository.
func (r *siteRepositoryImpl) AddProgress(ctx context.Context, p site.ProgressUpdate) (site.ProgressUpdate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO site_progress (id, site_id, update_date, description, completion_percent, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.SiteID,
		p.UpdateDate,
		p.Description,
		p.CompletionPercent,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return site.ProgressUpdate{}, site.ErrSiteNotFound
		}
		return site.ProgressUpdate{}, fmt.Errorf("failed to add progress update: %w", err)
	}

	return p, nil
}

// ListProgress implements site.SiteRepository.
func (r *siteRepositoryImpl) ListProgress(ctx context.Context, siteID string) ([]site.ProgressUpdate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, update_date, description, completion_percent, created_at
		FROM site_progress
		WHERE site_id = $1
		ORDER BY update_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress updates: %w", err)
	}
	defer rows.Close()

	var updates []site.ProgressUpdate
	for rows.Next() {
		var p site.ProgressUpdate
		err := rows.Scan(
			&p.ID,
			&p.SiteID,
			&p.UpdateDate,
			&p.Description,
			&p.CompletionPercent,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress update: %w", err)
		}
		updates = append(updates, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return updates, nil
}

// DeleteProgress implements site.SiteRepository.
func (r *siteRepositoryImpl) DeleteProgress(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM site_progress WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete progress update: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return site.ErrProgressNotFound
	}

	return nil
}
