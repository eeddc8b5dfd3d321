package services

import (
	"context"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/pkg/errors"
	"strings"
)

type skillRepository interface {
	Add(ctx context.Context, skill *entities.Skill) error
	GetAll(ctx context.Context) ([]entities.Skill, error)
	GetByID(ctx context.Context, id uint) (*entities.Skill, error)
	FindByNameAndLevel(ctx context.Context, name string, level entities.SkillLevel) (*entities.Skill, error)
	Update(ctx context.Context, skill *entities.Skill) error
	Remove(ctx context.Context, id uint) error
}

type SkillInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Level string `json:"level"`
}

type SkillCatalog struct {
	skills skillRepository
}

func NewSkillCatalog(skills skillRepository) *SkillCatalog {
	return &SkillCatalog{skills: skills}
}

func (s *SkillCatalog) List(ctx context.Context) ([]entities.Skill, error) {
	all, err := s.skills.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list skills")
	}
	return nonNil(all), nil
}

func (s *SkillCatalog) Get(ctx context.Context, id uint) (*entities.Skill, error) {
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "load skill")
	}
	if skill == nil {
		return nil, apperrors.NotFound("skill not found")
	}
	return skill, nil
}

func (s *SkillCatalog) Create(ctx context.Context, caller entities.Caller, input SkillInput) (*entities.Skill, error) {
	if !caller.IsRecruiterOrAdmin() {
		return nil, apperrors.Forbidden("not allowed")
	}

	name, level, err := s.check(input)
	if err != nil {
		return nil, err
	}
	if err = s.ensureUnique(ctx, name, level, 0); err != nil {
		return nil, err
	}

	skill := &entities.Skill{Name: name, Level: level}
	if err = s.skills.Add(ctx, skill); err != nil {
		return nil, s.writeError(err, "add skill")
	}
	return skill, nil
}

func (s *SkillCatalog) Update(ctx context.Context, id uint, caller entities.Caller, input SkillInput) (*entities.Skill, error) {
	if !caller.IsRecruiterOrAdmin() {
		return nil, apperrors.Forbidden("not allowed")
	}

	skill, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		input.Name = skill.Name
	}
	if input.Level == "" {
		input.Level = string(skill.Level)
	}

	name, level, err := s.check(input)
	if err != nil {
		return nil, err
	}
	if err = s.ensureUnique(ctx, name, level, skill.ID); err != nil {
		return nil, err
	}

	skill.Name, skill.Level = name, level
	if err = s.skills.Update(ctx, skill); err != nil {
		return nil, s.writeError(err, "update skill")
	}
	return skill, nil
}

func (s *SkillCatalog) Delete(ctx context.Context, id uint, caller entities.Caller) error {
	if !caller.IsRecruiterOrAdmin() {
		return apperrors.Forbidden("not allowed")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return errors.Wrap(s.skills.Remove(ctx, id), "remove skill")
}

func (s *SkillCatalog) check(input SkillInput) (string, entities.SkillLevel, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return "", "", err
	}
	level, err := entities.ToSkillLevel(input.Level)
	if err != nil {
		return "", "", apperrors.InvalidInput("invalid skill level %q", input.Level)
	}
	return input.Name, level, nil
}

func (s *SkillCatalog) ensureUnique(ctx context.Context, name string, level entities.SkillLevel, selfID uint) error {
	existing, err := s.skills.FindByNameAndLevel(ctx, name, level)
	if err != nil {
		return errors.Wrap(err, "check existing skill")
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.Conflict("skill %q with level %s already exists", name, level)
	}
	return nil
}

func (s *SkillCatalog) writeError(err error, action string) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperrors.Conflict("skill already exists")
	}
	return errors.Wrap(err, action)
}
