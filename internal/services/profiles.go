package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/pkg/errors"
	"strings"
)

type profileRepository interface {
	Add(ctx context.Context, profile *entities.Profile) error
	GetByUser(ctx context.Context, userID uint) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	RemoveByUser(ctx context.Context, userID uint) error
}

type ProfileInput struct {
	FullName          string      `json:"fullName" validate:"required"`
	Headline          string      `json:"headline"`
	Bio               string      `json:"bio"`
	Location          string      `json:"location"`
	YearsOfExperience float64     `json:"yearsOfExperience" validate:"min=0"`
	Skills            skills.List `json:"skills"`
	Goals             string      `json:"goals"`
	LinkedinURL       string      `json:"linkedinUrl"`
	PortfolioURL      string      `json:"portfolioUrl"`
	Avatar            string      `json:"avatar"`
}

type ProfilePatch struct {
	FullName          *string     `json:"fullName"`
	Headline          *string     `json:"headline"`
	Bio               *string     `json:"bio"`
	Location          *string     `json:"location"`
	YearsOfExperience *float64    `json:"yearsOfExperience" validate:"omitempty,min=0"`
	Skills            skills.List `json:"skills"`
	Goals             *string     `json:"goals"`
	LinkedinURL       *string     `json:"linkedinUrl"`
	PortfolioURL      *string     `json:"portfolioUrl"`
	Avatar            *string     `json:"avatar"`
}

type Profiles struct {
	profiles   profileRepository
	normalizer skills.Normalizer
}

func NewProfiles(profiles profileRepository, normalizer skills.Normalizer) *Profiles {
	return &Profiles{profiles: profiles, normalizer: normalizer}
}

func (s *Profiles) Create(ctx context.Context, caller entities.Caller, input ProfileInput) (*entities.Profile, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.profiles.GetByUser(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load profile")
	}
	if existing != nil {
		return nil, apperrors.Conflict("profile already exists")
	}

	profile := &entities.Profile{
		UserID:            caller.ID,
		FullName:          input.FullName,
		Headline:          strings.TrimSpace(input.Headline),
		Bio:               input.Bio,
		Location:          strings.TrimSpace(input.Location),
		YearsOfExperience: input.YearsOfExperience,
		Skills:            s.normalizer.Normalize(input.Skills),
		Goals:             input.Goals,
		LinkedinURL:       strings.TrimSpace(input.LinkedinURL),
		PortfolioURL:      strings.TrimSpace(input.PortfolioURL),
		Avatar:            input.Avatar,
	}
	if err = s.profiles.Add(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("profile already exists")
		}
		return nil, errors.Wrap(err, "add profile")
	}
	return profile, nil
}

func (s *Profiles) GetMine(ctx context.Context, caller entities.Caller) (*entities.Profile, error) {
	return s.get(ctx, caller.ID)
}

// GetByUser lets recruiters look at a candidate's profile.
func (s *Profiles) GetByUser(ctx context.Context, userID uint, caller entities.Caller) (*entities.Profile, error) {
	if !caller.IsRecruiterOrAdmin() {
		return nil, apperrors.Forbidden("not allowed")
	}
	return s.get(ctx, userID)
}

func (s *Profiles) UpdateMine(ctx context.Context, caller entities.Caller, patch ProfilePatch) (*entities.Profile, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	if name := trimmed(patch.FullName); name != nil && *name == "" {
		return nil, apperrors.InvalidInput("fullName must not be empty")
	}

	profile, err := s.get(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	assign(&profile.FullName, trimmed(patch.FullName))
	assign(&profile.Headline, trimmed(patch.Headline))
	assign(&profile.Bio, patch.Bio)
	assign(&profile.Location, trimmed(patch.Location))
	assign(&profile.YearsOfExperience, patch.YearsOfExperience)
	assign(&profile.Goals, patch.Goals)
	assign(&profile.LinkedinURL, trimmed(patch.LinkedinURL))
	assign(&profile.PortfolioURL, trimmed(patch.PortfolioURL))
	assign(&profile.Avatar, patch.Avatar)
	if patch.Skills != nil {
		profile.Skills = s.normalizer.Normalize(patch.Skills)
	}

	if err = s.profiles.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "update profile")
	}
	return profile, nil
}

func (s *Profiles) DeleteMine(ctx context.Context, caller entities.Caller) error {
	if _, err := s.get(ctx, caller.ID); err != nil {
		return err
	}
	return errors.Wrap(s.profiles.RemoveByUser(ctx, caller.ID), "remove profile")
}

func (s *Profiles) get(ctx context.Context, userID uint) (*entities.Profile, error) {
	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load profile")
	}
	if profile == nil {
		return nil, apperrors.NotFound("profile not found")
	}
	return profile, nil
}

func assign[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
