package services

import (
	"context"
	"fmt"
	"github.com/maxaizer/careerboost/internal/logger"
	"github.com/maxaizer/careerboost/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
	"time"
)

const (
	BioSourceAI       = "gemini"
	BioSourceFallback = "fallback-local"

	quotaExhaustedKey = "quota_exhausted"
)

type textGenerator interface {
	GenerateResponse(ctx context.Context, model string, text string) (string, error)
}

type BioInput struct {
	FullName        string   `json:"fullName" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Location        string   `json:"location"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	ExperienceYears *float64 `json:"experienceYears" validate:"omitempty,min=0"`
	Goals           string   `json:"goals"`
}

type Bio struct {
	Text   string `json:"bio"`
	Source string `json:"source"`
	Model  string `json:"model,omitempty"`
}

// BioService writes a short professional bio with the text generator. When the
// provider quota is exhausted it answers with a local template instead and keeps
// doing so until the cooldown expires.
type BioService struct {
	generator     textGenerator
	models        []string
	cooldown      *gocache.Cache
	quotaCooldown time.Duration
}

// NewBioService accepts a nil generator; every bio then comes from the template.
func NewBioService(generator textGenerator, models []string, quotaCooldown time.Duration) *BioService {
	return &BioService{
		generator:     generator,
		models:        models,
		cooldown:      gocache.New(quotaCooldown, time.Minute),
		quotaCooldown: quotaCooldown,
	}
}

func (s *BioService) Generate(ctx context.Context, input BioInput) (*Bio, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Title = strings.TrimSpace(input.Title)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if s.generator == nil || len(s.models) == 0 || s.quotaExhausted() {
		return s.fallback(input), nil
	}

	prompt := bioPrompt(input)
	var lastErr error
	for _, model := range s.models {
		text, err := s.generator.GenerateResponse(ctx, model, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			metrics.BioGenerationsCounter.WithLabelValues(BioSourceAI).Inc()
			return &Bio{Text: strings.TrimSpace(text), Source: BioSourceAI, Model: model}, nil
		}
		if err == nil {
			err = fmt.Errorf("empty response")
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Warnf("model %s failed to generate bio: %v", model, err)
		lastErr = err
	}

	if isQuotaError(lastErr) {
		if s.quotaCooldown > 0 {
			s.cooldown.SetDefault(quotaExhaustedKey, struct{}{})
		}
		log.Warnf("text generation quota exhausted, using local bio template")
		return s.fallback(input), nil
	}

	log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("bio generation failed: %v", lastErr)
	return nil, errors.Wrap(lastErr, "no text model could generate a bio")
}

func (s *BioService) quotaExhausted() bool {
	_, found := s.cooldown.Get(quotaExhaustedKey)
	return found
}

func (s *BioService) fallback(input BioInput) *Bio {
	metrics.BioGenerationsCounter.WithLabelValues(BioSourceFallback).Inc()
	return &Bio{Text: FallbackBio(input), Source: BioSourceFallback}
}

// FallbackBio renders the deterministic local template.
func FallbackBio(input BioInput) string {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = "my region"
	}
	goals := strings.TrimSpace(input.Goals)
	if goals == "" {
		goals = "to find a new opportunity"
	}

	return fmt.Sprintf("I am %s, %s based in %s. ", input.FullName, input.Title, location) +
		fmt.Sprintf("I keep developing my skills in %s. ", strings.Join(input.Skills, ", ")) +
		fmt.Sprintf("My goal is %s, and I am motivated to learn and contribute to a team.", goals)
}

func bioPrompt(input BioInput) string {
	location := input.Location
	if location == "" {
		location = "Not specified"
	}
	experience := "Not specified"
	if input.ExperienceYears != nil {
		experience = fmt.Sprintf("%g", *input.ExperienceYears)
	}
	goals := input.Goals
	if goals == "" {
		goals = "Find an opportunity"
	}

	var sb strings.Builder
	sb.WriteString("You are a recruitment expert. ")
	sb.WriteString("Write a short professional bio (3 to 5 sentences) in the first person. ")
	sb.WriteString("The tone must be clear, positive and credible.\n\n")
	sb.WriteString("Name: " + input.FullName + "\n")
	sb.WriteString("Title: " + input.Title + "\n")
	sb.WriteString("Location: " + location + "\n")
	sb.WriteString("Years of experience: " + experience + "\n")
	sb.WriteString("Skills: " + strings.Join(input.Skills, ", ") + "\n")
	sb.WriteString("Goal: " + goals + "\n\n")
	sb.WriteString("Constraints: no filler text, no hashtags, no headings. A bio ready to paste on LinkedIn.")
	return sb.String()
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "rate")
}
