package service

import (
	"context"
	"strings"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"
)

const birthdateLayout = "2006-01-02"

// ProfileService manages the personal data attached to an identity
type ProfileService interface {
	Get(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	Upsert(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a new instance of profileService
func NewProfileService(repo domain.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError("failed to get profile", err)
	}
	if p == nil {
		return nil, domain.NewNotFoundError("profile not found")
	}
	return toProfileResponse(p), nil
}

func (s *profileService) Upsert(ctx context.Context, userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	p := &domain.Profile{
		ID:       userID,
		FullName: strings.TrimSpace(req.FullName),
		City:     strings.TrimSpace(req.City),
		Country:  strings.TrimSpace(req.Country),
	}
	if req.Birthdate != "" {
		b, err := time.Parse(birthdateLayout, req.Birthdate)
		if err != nil {
			return nil, domain.NewValidationError("birthdate must be YYYY-MM-DD").WithContext("birthdate", "datetime")
		}
		if b.After(time.Now()) {
			return nil, domain.NewValidationError("birthdate is in the future").WithContext("birthdate", "past")
		}
		p.Birthdate = &b
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, repoError("failed to save profile", err)
	}
	return toProfileResponse(p), nil
}

func toProfileResponse(p *domain.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Birthdate: p.Birthdate,
		City:      p.City,
		Country:   p.Country,
		UpdatedAt: p.UpdatedAt,
	}
}
