package gemini

import (
	"context"
	"fmt"
	"github.com/google/generative-ai-go/genai"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"strings"
	"time"
)

type Client struct {
	client            *genai.Client
	models            map[string]*genai.GenerativeModel
	minuteRateLimiter *rate.Limiter
	dayRateLimiter    *rate.Limiter
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Client{
		client: client,
		models: make(map[string]*genai.GenerativeModel),
	}, nil
}

func (c *Client) SetMinuteRateLimit(maxRequestsPerMinute float32) {
	c.minuteRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerMinute/60), 1)
}

func (c *Client) SetDayRateLimit(maxRequestsPerDay float32) {
	c.dayRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerDay/86400), int(maxRequestsPerDay))
}

// PrepareModels must be called before serving; the model map is read-only afterwards.
func (c *Client) PrepareModels(names []string) {
	for _, name := range names {
		model := c.client.GenerativeModel(name)
		model.SetTemperature(0.7)
		model.SetMaxOutputTokens(512)
		c.models[name] = model
	}
}

func (c *Client) GenerateResponse(ctx context.Context, model string, text string) (string, error) {

	genModel, ok := c.models[model]
	if !ok {
		return "", fmt.Errorf("model %s is not prepared", model)
	}

	var resp string
	var err error

	_, _, _ = lo.AttemptWhileWithDelay(3, 2*time.Second, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warnf("gemini api returned 500 error for model %s, retrying...", model)
		}
		resp, err = c.waitAndGenerateResponse(ctx, genModel, text)
		return err, isInternalError(err)
	})

	return resp, err
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) waitAndGenerateResponse(ctx context.Context, model *genai.GenerativeModel, text string) (string, error) {

	limiters := []*rate.Limiter{c.minuteRateLimiter, c.dayRateLimiter}
	for _, limiter := range limiters {
		if limiter != nil {
			err := limiter.Wait(ctx)
			if err != nil {
				return "", err
			}
		}
	}

	return tryGenerateResponse(ctx, model, text)
}

func tryGenerateResponse(ctx context.Context, model *genai.GenerativeModel, text string) (string, error) {

	response, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil ||
		len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("response part is not text")
	}
	return strings.TrimSpace(sb.String()), nil
}

func isInternalError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Error 500")
}
