package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

type jobRepository interface {
	Add(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
	GetActive(ctx context.Context) ([]entities.Job, error)
	Update(ctx context.Context, job *entities.Job) error
	Remove(ctx context.Context, id uint) error
}

type JobInput struct {
	Title          string      `json:"title" validate:"required"`
	Company        string      `json:"company" validate:"required"`
	Location       string      `json:"location"`
	Type           string      `json:"type"`
	Description    string      `json:"description" validate:"required"`
	RequiredSkills skills.List `json:"requiredSkills"`
	SalaryMin      *int        `json:"salaryMin" validate:"omitempty,min=0"`
	SalaryMax      *int        `json:"salaryMax" validate:"omitempty,min=0"`
}

// JobPatch carries only the fields the caller wants to change.
type JobPatch struct {
	Title          *string     `json:"title"`
	Company        *string     `json:"company"`
	Location       *string     `json:"location"`
	Type           *string     `json:"type"`
	Description    *string     `json:"description"`
	RequiredSkills skills.List `json:"requiredSkills"`
	SalaryMin      *int        `json:"salaryMin" validate:"omitempty,min=0"`
	SalaryMax      *int        `json:"salaryMax" validate:"omitempty,min=0"`
	IsActive       *bool       `json:"isActive"`
}

type Jobs struct {
	jobs       jobRepository
	normalizer skills.Normalizer
}

func NewJobs(jobs jobRepository, normalizer skills.Normalizer) *Jobs {
	return &Jobs{jobs: jobs, normalizer: normalizer}
}

func (s *Jobs) Create(ctx context.Context, caller entities.Caller, input JobInput) (*entities.Job, error) {
	if !caller.IsRecruiterOrAdmin() {
		return nil, apperrors.Forbidden("only recruiters can post jobs")
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Company = strings.TrimSpace(input.Company)
	input.Description = strings.TrimSpace(input.Description)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	employmentType, err := entities.ToEmploymentType(input.Type)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid employment type %q", input.Type)
	}

	salary := entities.SalaryRange{Min: input.SalaryMin, Max: input.SalaryMax}
	if err = checkSalary(salary); err != nil {
		return nil, err
	}

	job := &entities.Job{
		RecruiterID:    caller.ID,
		Title:          input.Title,
		Company:        input.Company,
		Location:       strings.TrimSpace(input.Location),
		Type:           employmentType,
		Description:    input.Description,
		RequiredSkills: s.normalizer.Normalize(input.RequiredSkills),
		Salary:         salary,
		IsActive:       true,
	}
	if err = s.jobs.Add(ctx, job); err != nil {
		return nil, errors.Wrap(err, "add job")
	}
	log.Infof("job %d created by user %d", job.ID, caller.ID)
	return job, nil
}

func (s *Jobs) ListActive(ctx context.Context) ([]entities.Job, error) {
	jobs, err := s.jobs.GetActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list active jobs")
	}
	return nonNil(jobs), nil
}

func (s *Jobs) Get(ctx context.Context, id uint) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "load job")
	}
	if job == nil {
		return nil, apperrors.NotFound("job not found")
	}
	return job, nil
}

func (s *Jobs) Update(ctx context.Context, id uint, caller entities.Caller, patch JobPatch) (*entities.Job, error) {
	job, err := s.owned(ctx, id, caller)
	if err != nil {
		return nil, err
	}
	if err = validateInput(patch); err != nil {
		return nil, err
	}

	for field, value := range map[string]*string{
		"title":       trimmed(patch.Title),
		"company":     trimmed(patch.Company),
		"description": trimmed(patch.Description),
	} {
		if value != nil && *value == "" {
			return nil, apperrors.InvalidInput("%s must not be empty", field)
		}
	}

	if patch.Title != nil {
		job.Title = *trimmed(patch.Title)
	}
	if patch.Company != nil {
		job.Company = *trimmed(patch.Company)
	}
	if patch.Description != nil {
		job.Description = *trimmed(patch.Description)
	}
	if patch.Location != nil {
		job.Location = *trimmed(patch.Location)
	}
	if patch.Type != nil {
		if job.Type, err = entities.ToEmploymentType(*patch.Type); err != nil {
			return nil, apperrors.InvalidInput("invalid employment type %q", *patch.Type)
		}
	}
	if patch.RequiredSkills != nil {
		job.RequiredSkills = s.normalizer.Normalize(patch.RequiredSkills)
	}
	if patch.SalaryMin != nil {
		job.Salary.Min = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.Salary.Max = patch.SalaryMax
	}
	if err = checkSalary(job.Salary); err != nil {
		return nil, err
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}

	recruiter := job.Recruiter
	job.Recruiter = nil
	if err = s.jobs.Update(ctx, job); err != nil {
		return nil, errors.Wrap(err, "update job")
	}
	job.Recruiter = recruiter
	return job, nil
}

func (s *Jobs) Delete(ctx context.Context, id uint, caller entities.Caller) error {
	if _, err := s.owned(ctx, id, caller); err != nil {
		return err
	}
	if err := s.jobs.Remove(ctx, id); err != nil {
		return errors.Wrap(err, "remove job")
	}
	log.Infof("job %d deleted by user %d", id, caller.ID)
	return nil
}

func (s *Jobs) owned(ctx context.Context, id uint, caller entities.Caller) (*entities.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanManage(job.RecruiterID) {
		return nil, apperrors.Forbidden("not allowed")
	}
	return job, nil
}

func checkSalary(salary entities.SalaryRange) error {
	if salary.Min != nil && salary.Max != nil && *salary.Min > *salary.Max {
		return apperrors.InvalidInput("salary min must not exceed max")
	}
	return nil
}
