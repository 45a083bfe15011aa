package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/repository/models"
	"tam-survey/internal/util"

	"github.com/jmoiron/sqlx"
)

// ProfileDatabaseAdapter implements domain.ProfileRepository using sqlx
type ProfileDatabaseAdapter struct {
	db DBTX
}

func NewProfileDatabaseAdapter(db *sqlx.DB) domain.ProfileRepository {
	return &ProfileDatabaseAdapter{db: db}
}

func toDomainProfile(m *models.Profile) *domain.Profile {
	if m == nil {
		return nil
	}
	return &domain.Profile{
		ID:        m.ID,
		FullName:  m.FullName,
		Birthdate: util.NullTimeToPtr(m.Birthdate),
		City:      m.City.String,
		Country:   m.Country.String,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainProfile(p *domain.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	return &models.Profile{
		ID:        p.ID,
		FullName:  p.FullName,
		Birthdate: util.TimePtrToNullTime(p.Birthdate),
		City:      util.StringToNullString(p.City),
		Country:   util.StringToNullString(p.Country),
		UpdatedAt: p.UpdatedAt,
	}
}

// GetByID returns nil, nil when the user has no profile yet.
func (a *ProfileDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var m models.Profile
	query := `SELECT id, full_name, birthdate, city, country, updated_at FROM profiles WHERE id = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return toDomainProfile(&m), nil
}

// Upsert creates the profile or replaces its fields.
func (a *ProfileDatabaseAdapter) Upsert(ctx context.Context, p *domain.Profile) error {
	p.UpdatedAt = time.Now()
	query := `INSERT INTO profiles (id, full_name, birthdate, city, country, updated_at)
	          VALUES (:id, :full_name, :birthdate, :city, :country, :updated_at)
	          ON CONFLICT (id) DO UPDATE SET
	              full_name = EXCLUDED.full_name,
	              birthdate = EXCLUDED.birthdate,
	              city = EXCLUDED.city,
	              country = EXCLUDED.country,
	              updated_at = EXCLUDED.updated_at`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, fromDomainProfile(p)); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
