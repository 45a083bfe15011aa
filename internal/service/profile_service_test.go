package service

import (
	"context"
	"testing"
	"time"

	"tam-survey/internal/domain"
	"tam-survey/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Upsert(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ID == "u1" && p.FullName == "Ada Lovelace" && p.City == "London" &&
			p.Birthdate != nil && p.Birthdate.Equal(time.Date(1990, 3, 4, 0, 0, 0, 0, time.UTC))
	})).Return(nil)

	resp, err := svc.Upsert(context.Background(), "u1", &dto.ProfileRequest{
		FullName:  " Ada Lovelace ",
		Birthdate: "1990-03-04",
		City:      "London",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", resp.FullName)
	repo.AssertExpectations(t)
}

func TestProfileService_UpsertRejects(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo)
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	for name, req := range map[string]dto.ProfileRequest{
		"blank name":       {FullName: "  "},
		"bad birthdate":    {FullName: "Ada", Birthdate: "March 4th"},
		"future birthdate": {FullName: "Ada", Birthdate: future},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), "u1", &req)
			assert.True(t, domain.IsCode(err, domain.CodeValidation), "got %v", err)
		})
	}
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProfileService_Get(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo)
	repo.On("GetByID", mock.Anything, "u1").Return(&domain.Profile{ID: "u1", FullName: "Ada"}, nil)
	repo.On("GetByID", mock.Anything, "u2").Return(nil, nil)

	p, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FullName)

	_, err = svc.Get(context.Background(), "u2")
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}
