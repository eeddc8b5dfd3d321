package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"strings"
)

type companyProfileRepository interface {
	Add(ctx context.Context, profile *entities.CompanyProfile) error
	GetByUser(ctx context.Context, userID uint) (*entities.CompanyProfile, error)
	Update(ctx context.Context, profile *entities.CompanyProfile) error
}

type CompanyProfileInput struct {
	CompanyName string   `json:"companyName" validate:"required"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	WebsiteURL  string   `json:"websiteUrl"`
	LinkedinURL string   `json:"linkedinUrl"`
	Size        string   `json:"size"`
	Logo        string   `json:"logo"`
	CoverImage  string   `json:"coverImage"`
	AlbumImages []string `json:"albumImages"`
}

type CompanyProfilePatch struct {
	CompanyName *string  `json:"companyName"`
	Industry    *string  `json:"industry"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	WebsiteURL  *string  `json:"websiteUrl"`
	LinkedinURL *string  `json:"linkedinUrl"`
	Size        *string  `json:"size"`
	Logo        *string  `json:"logo"`
	CoverImage  *string  `json:"coverImage"`
	AlbumImages []string `json:"albumImages"`
}

type CompanyProfiles struct {
	profiles companyProfileRepository
}

func NewCompanyProfiles(profiles companyProfileRepository) *CompanyProfiles {
	return &CompanyProfiles{profiles: profiles}
}

func (s *CompanyProfiles) Create(ctx context.Context, caller entities.Caller,
	input CompanyProfileInput) (*entities.CompanyProfile, error) {

	if !caller.IsRecruiterOrAdmin() {
		return nil, apperrors.Forbidden("only recruiters have company profiles")
	}

	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	size, err := entities.ToCompanySize(input.Size)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid company size %q", input.Size)
	}

	existing, err := s.profiles.GetByUser(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load company profile")
	}
	if existing != nil {
		return nil, apperrors.Conflict("company profile already exists")
	}

	profile := &entities.CompanyProfile{
		UserID:      caller.ID,
		CompanyName: input.CompanyName,
		Industry:    strings.TrimSpace(input.Industry),
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		WebsiteURL:  strings.TrimSpace(input.WebsiteURL),
		LinkedinURL: strings.TrimSpace(input.LinkedinURL),
		Size:        size,
		Logo:        input.Logo,
		CoverImage:  input.CoverImage,
		AlbumImages: SanitizeAlbum(input.AlbumImages),
	}
	if err = s.profiles.Add(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("company profile already exists")
		}
		return nil, errors.Wrap(err, "add company profile")
	}
	return profile, nil
}

func (s *CompanyProfiles) GetMine(ctx context.Context, caller entities.Caller) (*entities.CompanyProfile, error) {
	if !caller.IsRecruiterOrAdmin() {
		return nil, apperrors.Forbidden("only recruiters have company profiles")
	}
	return s.GetByUser(ctx, caller.ID)
}

func (s *CompanyProfiles) GetByUser(ctx context.Context, userID uint) (*entities.CompanyProfile, error) {
	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load company profile")
	}
	if profile == nil {
		return nil, apperrors.NotFound("company profile not found")
	}
	return profile, nil
}

func (s *CompanyProfiles) UpdateMine(ctx context.Context, caller entities.Caller,
	patch CompanyProfilePatch) (*entities.CompanyProfile, error) {

	profile, err := s.GetMine(ctx, caller)
	if err != nil {
		return nil, err
	}

	if name := trimmed(patch.CompanyName); name != nil && *name == "" {
		return nil, apperrors.InvalidInput("companyName must not be empty")
	}
	if patch.Size != nil {
		if profile.Size, err = entities.ToCompanySize(*patch.Size); err != nil {
			return nil, apperrors.InvalidInput("invalid company size %q", *patch.Size)
		}
	}

	assign(&profile.CompanyName, trimmed(patch.CompanyName))
	assign(&profile.Industry, trimmed(patch.Industry))
	assign(&profile.Description, patch.Description)
	assign(&profile.Location, trimmed(patch.Location))
	assign(&profile.WebsiteURL, trimmed(patch.WebsiteURL))
	assign(&profile.LinkedinURL, trimmed(patch.LinkedinURL))
	assign(&profile.Logo, patch.Logo)
	assign(&profile.CoverImage, patch.CoverImage)
	if patch.AlbumImages != nil {
		profile.AlbumImages = SanitizeAlbum(patch.AlbumImages)
	}

	if err = s.profiles.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "update company profile")
	}
	return profile, nil
}

// SanitizeAlbum keeps at most MaxAlbumImages non-blank entries.
func SanitizeAlbum(images []string) []string {
	kept := lo.Filter(images, func(image string, _ int) bool {
		return strings.TrimSpace(image) != ""
	})
	return lo.Slice(kept, 0, entities.MaxAlbumImages)
}
