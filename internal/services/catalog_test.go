package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Jobs_Create_ShouldNormalizeSkillsAndCheckRole(t *testing.T) {
	env := upEnvironment(t)
	ctx := context.Background()

	job, err := env.jobs.Create(ctx, env.recruiter, JobInput{
		Title:          "  Go developer ",
		Company:        "Acme",
		Description:    "desc",
		RequiredSkills: []string{" Go", "go", "", "Docker"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Go developer", job.Title)
	assert.Equal(t, []string{"Go", "Docker"}, job.RequiredSkills)
	assert.Equal(t, entities.FullTime, job.Type)
	assert.True(t, job.IsActive)

	_, err = env.jobs.Create(ctx, env.candidate, JobInput{Title: "x", Company: "y", Description: "z"})
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))

	_, err = env.jobs.Create(ctx, env.recruiter, JobInput{Title: "  ", Company: "y", Description: "z"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))

	_, err = env.jobs.Create(ctx, env.recruiter, JobInput{Title: "x", Company: "y", Description: "z", Type: "gig"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))

	_, err = env.jobs.Create(ctx, env.recruiter, JobInput{Title: "x", Company: "y", Description: "z",
		SalaryMin: lo.ToPtr(100), SalaryMax: lo.ToPtr(50)})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}

func Test_Jobs_UpdateAndDelete_ShouldRequireOwner(t *testing.T) {
	env := upEnvironment(t)
	ctx := context.Background()
	job := env.addJob(t, "Go developer")

	_, err := env.jobs.Update(ctx, job.ID, env.otherRecruiter, JobPatch{Title: lo.ToPtr("Hijacked")})
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	assert.True(t, apperrors.Is(env.jobs.Delete(ctx, job.ID, env.otherRecruiter), apperrors.KindForbidden))

	updated, err := env.jobs.Update(ctx, job.ID, env.recruiter, JobPatch{
		Location: lo.ToPtr("Paris"), IsActive: lo.ToPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Paris", updated.Location)
	assert.Equal(t, "Go developer", updated.Title)
	assert.False(t, updated.IsActive)

	active, err := env.jobs.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, env.jobs.Delete(ctx, job.ID, env.admin))
	_, err = env.jobs.Get(ctx, job.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func Test_Profiles_ShouldCapSkillsAndAllowOnePerUser(t *testing.T) {
	env := upEnvironment(t)
	ctx := context.Background()
	profiles := NewProfiles(repositories.NewProfilesRepository(env.db), skills.NewNormalizer(2))

	profile, err := profiles.Create(ctx, env.candidate, ProfileInput{
		FullName: "Ann", Skills: []string{"Go", "GO", "Rust", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, profile.Skills)

	_, err = profiles.Create(ctx, env.candidate, ProfileInput{FullName: "Ann"})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	_, err = profiles.Create(ctx, env.recruiter, ProfileInput{FullName: " "})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))

	updated, err := profiles.UpdateMine(ctx, env.candidate, ProfilePatch{Headline: lo.ToPtr("Gopher")})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", updated.Headline)
	assert.Equal(t, []string{"Go", "Rust"}, updated.Skills)

	_, err = profiles.GetByUser(ctx, env.candidate.ID, env.candidate)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	viewed, err := profiles.GetByUser(ctx, env.candidate.ID, env.recruiter)
	require.NoError(t, err)
	assert.Equal(t, "Gopher", viewed.Headline)

	require.NoError(t, profiles.DeleteMine(ctx, env.candidate))
	_, err = profiles.GetMine(ctx, env.candidate)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func Test_CompanyProfiles_ShouldSanitizeAlbumAndValidateSize(t *testing.T) {
	env := upEnvironment(t)
	ctx := context.Background()
	companies := NewCompanyProfiles(repositories.NewCompanyProfilesRepository(env.db))

	_, err := companies.Create(ctx, env.candidate, CompanyProfileInput{CompanyName: "Acme"})
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))

	_, err = companies.Create(ctx, env.recruiter, CompanyProfileInput{CompanyName: "Acme", Size: "huge"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))

	profile, err := companies.Create(ctx, env.recruiter, CompanyProfileInput{
		CompanyName: "Acme",
		AlbumImages: []string{"a.png", " ", "b.png", "c.png", "d.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.SizeMicro, profile.Size)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, profile.AlbumImages)

	_, err = companies.Create(ctx, env.recruiter, CompanyProfileInput{CompanyName: "Acme 2"})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	updated, err := companies.UpdateMine(ctx, env.recruiter, CompanyProfilePatch{
		Size: lo.ToPtr("51-200"), AlbumImages: []string{"", "x.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.SizeMedium, updated.Size)
	assert.Equal(t, []string{"x.png"}, updated.AlbumImages)
	assert.Equal(t, "Acme", updated.CompanyName)

	public, err := companies.GetByUser(ctx, env.recruiter.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SizeMedium, public.Size)
}

func Test_SkillCatalog_ShouldRejectDuplicates(t *testing.T) {
	env := upEnvironment(t)
	ctx := context.Background()
	catalog := NewSkillCatalog(repositories.NewSkillsRepository(env.db))

	_, err := catalog.Create(ctx, env.candidate, SkillInput{Name: "Go"})
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))

	goSkill, err := catalog.Create(ctx, env.recruiter, SkillInput{Name: " Go "})
	require.NoError(t, err)
	assert.Equal(t, "Go", goSkill.Name)
	assert.Equal(t, entities.Beginner, goSkill.Level)

	_, err = catalog.Create(ctx, env.recruiter, SkillInput{Name: "Go", Level: "beginner"})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	_, err = catalog.Create(ctx, env.recruiter, SkillInput{Name: "Go", Level: "guru"})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))

	expert, err := catalog.Create(ctx, env.recruiter, SkillInput{Name: "Go", Level: "expert"})
	require.NoError(t, err)

	_, err = catalog.Update(ctx, expert.ID, env.recruiter, SkillInput{Level: "beginner"})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	renamed, err := catalog.Update(ctx, expert.ID, env.recruiter, SkillInput{Name: "Golang"})
	require.NoError(t, err)
	assert.Equal(t, entities.Expert, renamed.Level)

	all, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Golang"}, lo.Map(all, func(s entities.Skill, _ int) string { return s.Name }))

	require.NoError(t, catalog.Delete(ctx, goSkill.ID, env.admin))
	_, err = catalog.Get(ctx, goSkill.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
