package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/ethanolivertroy/depaudit/internal/cache"
	"github.com/ethanolivertroy/depaudit/internal/models"
)

// ErrInvalidResponse is returned when the model reply is not usable advice
var ErrInvalidResponse = errors.New("advisor: invalid response from model")

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.5-flash"

// maxManifestBytes bounds how much of the manifest is sent with the prompt
const maxManifestBytes = 8 << 10

const attempts = 3

// generateFunc sends a prompt and returns the raw JSON text of the reply
type generateFunc func(ctx context.Context, prompt string) (string, error)

// GeminiAdvisor asks a Gemini model for recommendations
type GeminiAdvisor struct {
	model    string
	generate generateFunc
	cache    *cache.Cache // optional
	backoff  time.Duration
	logger   *slog.Logger
}

// NewGemini creates an advisor backed by the Gemini API. A nil cache disables caching.
func NewGemini(ctx context.Context, apiKey, model string, c *cache.Cache, logger *slog.Logger) (*GeminiAdvisor, error) {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	generate := func(ctx context.Context, prompt string) (string, error) {
		resp, err := cli.Models.GenerateContent(ctx, model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
			&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
		)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", ErrInvalidResponse
		}
		return resp.Candidates[0].Content.Parts[0].Text, nil
	}

	return &GeminiAdvisor{
		model:    model,
		generate: generate,
		cache:    c,
		backoff:  300 * time.Millisecond,
		logger:   logger,
	}, nil
}

// Name identifies the advisor in logs
func (g *GeminiAdvisor) Name() string { return "Gemini:" + g.model }

// Analyze sends the result to the model and decodes its advice. Identical
// requests are answered from the cache.
func (g *GeminiAdvisor) Analyze(ctx context.Context, result *models.DependencyResult) (*models.Advice, error) {
	prompt, err := buildPrompt(result)
	if err != nil {
		return nil, err
	}

	key := cache.Key(g.model, prompt)
	if g.cache != nil {
		if data, ok := g.cache.Get(key); ok {
			if advice, err := decodeAdvice(string(data)); err == nil {
				g.logger.Debug("advisor cache hit", "model", g.model)
				return advice, nil
			}
		}
	}

	g.logger.Info("advisor request", "model", g.model, "bytes", len(prompt))

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.backoff * time.Duration(1<<(attempt-1))):
			}
		}

		text, err := g.generate(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		advice, err := decodeAdvice(text)
		if err != nil {
			lastErr = err
			continue
		}

		if g.cache != nil {
			if data, err := json.Marshal(advice); err == nil {
				if err := g.cache.Set(key, data); err != nil {
					g.logger.Debug("failed to cache advice", "error", err)
				}
			}
		}
		return advice, nil
	}
	return nil, lastErr
}

// decodeAdvice parses a model reply, tolerating a fenced code block
func decodeAdvice(text string) (*models.Advice, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var advice models.Advice
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &advice); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if advice.PackageUpdates == nil {
		advice.PackageUpdates = []models.PackageUpdate{}
	}
	if advice.SecurityIssues == nil {
		advice.SecurityIssues = []models.SecurityIssue{}
	}
	if advice.CodeSuggestions == nil {
		advice.CodeSuggestions = []models.CodeSuggestion{}
	}
	if advice.PerformanceTips == nil {
		advice.PerformanceTips = []models.PerformanceTip{}
	}
	return &advice, nil
}

const instructions = `You are an expert software developer and package manager assistant.
Analyze the dependency report below and provide specific, actionable recommendations.

Respond with a single JSON object of this shape:
{
  "packageUpdates": [{"packageName": "", "currentVersion": "", "latestVersion": "", "updateType": "patch|minor|major", "description": "", "breakingChanges": [], "recommended": true}],
  "securityIssues": [{"packageName": "", "severity": "low|medium|high|critical", "description": "", "cve": "", "recommendation": ""}],
  "codeSuggestions": [{"file": "", "line": 0, "suggestion": "", "impact": "low|medium|high", "category": "import|dependency|performance|security"}],
  "performanceTips": [{"tip": "", "impact": "low|medium|high", "category": ""}],
  "summary": "Overall project health and recommendations"
}

Focus on security vulnerabilities in dependencies, dependency hygiene, bundle size and performance.`

// buildPrompt combines the instructions, the manifest and the report
func buildPrompt(result *models.DependencyResult) (string, error) {
	report, err := json.MarshalIndent(struct {
		Missing      []string                  `json:"missing"`
		Unused       []models.UnusedDependency `json:"unused"`
		NotInstalled []string                  `json:"notInstalled"`
	}{result.Missing, result.Unused, result.NotInstalled}, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(instructions)

	if result.Manifest != "" {
		if content, err := os.ReadFile(result.Manifest); err == nil {
			if len(content) > maxManifestBytes {
				content = content[:maxManifestBytes]
			}
			fmt.Fprintf(&b, "\n\n[MANIFEST %s]\n%s", filepath.Base(result.Manifest), content)
		}
	}

	b.WriteString("\n\n[DEPENDENCY REPORT]\n")
	b.Write(report)
	return b.String(), nil
}
