package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"cv-screener/internal/cv"
	"cv-screener/internal/jobs"
	"cv-screener/internal/logger"
)

//go:embed prompts/extract_cv.md
var extractPrompt string

//go:embed prompts/evaluate.md
var evaluatePrompt string

//go:embed prompts/skill_tests.md
var skillTestsPrompt string

// invalidJSONError is the literal marker kept for compatibility with the
// callers of the original screening system.
const invalidJSONError = "Invalid JSON from model"

// minTestConfidence filters which extracted skills get a generated test.
const minTestConfidence = 50

const defaultMaxLogLength = 200

// Gateway is the single choke point for prompt construction and response
// parsing. Malformed model output is absorbed here and surfaced as marker
// records; only transport failures escape as errors.
type Gateway struct {
	completer Completer
	logger    *zap.Logger
	maxLogLen int
}

func NewGateway(completer Completer, maxLogLength int, log *zap.Logger) *Gateway {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Gateway{
		completer: completer,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// ExtractCV asks the model for a structured record of the normalized CV
// text. A response that is not valid JSON degrades to a failure marker
// carrying the verbatim output; it does not fail the operation.
func (g *Gateway) ExtractCV(ctx context.Context, normalizedText string) (*cv.Extraction, error) {
	prompt := strings.ReplaceAll(extractPrompt, "{{CV_TEXT}}", normalizedText)

	raw, err := g.complete(ctx, "extract_cv", prompt)
	if err != nil {
		return nil, err
	}

	var parsed cv.ParsedCV
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		g.logger.Warn("cv extraction returned unparseable output",
			zap.String("response_preview", logger.TruncateForLog(raw, g.maxLogLen)),
			zap.Error(err),
		)
		return &cv.Extraction{Failure: &cv.ExtractionFailure{
			Error:     invalidJSONError,
			RawOutput: raw,
		}}, nil
	}

	return &cv.Extraction{CV: &parsed}, nil
}

// Evaluate runs the deep single-candidate review: relevance, strengths,
// weaknesses and a shortlist/reject recommendation. The full extraction
// payload is embedded into the prompt, failure marker included, so the model
// sees exactly what the pipeline knows.
func (g *Gateway) Evaluate(ctx context.Context, job *jobs.Job, extraction *cv.Extraction, cvName string) (*EvaluationResult, error) {
	cvJSON, err := json.MarshalIndent(extraction.Payload(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal cv payload: %w", err)
	}

	replacer := strings.NewReplacer(
		"{{JOB_TITLE}}", job.Title,
		"{{JOB_DESCRIPTION}}", job.Description,
		"{{JOB_SKILLS}}", strings.Join(job.Skills, ", "),
		"{{CV_NAME}}", cvName,
		"{{CV_JSON}}", string(cvJSON),
	)
	prompt := replacer.Replace(evaluatePrompt)

	raw, err := g.complete(ctx, "evaluate", prompt)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		g.logger.Warn("evaluation returned unparseable output",
			zap.String("cv_name", cvName),
			zap.String("response_preview", logger.TruncateForLog(raw, g.maxLogLen)),
			zap.Error(err),
		)
		return &EvaluationResult{Failure: &EvaluationFailure{
			Error:   invalidJSONError,
			Content: raw,
		}}, nil
	}

	return &EvaluationResult{Evaluation: &Evaluation{
		Relevance:      coerceInt(data["Relevance"]),
		Strengths:      coerceStrings(data["Strengths"]),
		Weaknesses:     coerceStrings(data["Weaknesses"]),
		Recommendation: coerceString(data["Recommendation"]),
	}}, nil
}

// GenerateSkillTests builds one practical test per candidate skill with
// confidence at or above the threshold. When the candidate has no such
// skills the model is never called and the result is empty.
func (g *Gateway) GenerateSkillTests(ctx context.Context, extraction *cv.Extraction, job *jobs.Job) ([]SkillTest, error) {
	var parsed *cv.ParsedCV
	if extraction != nil {
		parsed = extraction.CV
	}

	candidates := make([]cv.SkillEntry, 0)
	for _, entry := range cv.ExtractSkills(parsed) {
		if entry.Confidence < minTestConfidence {
			continue
		}
		// Source stays out of the prompt payload.
		entry.Source = ""
		candidates = append(candidates, entry)
	}

	if len(candidates) == 0 {
		return []SkillTest{}, nil
	}

	skillsJSON, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("marshal candidate skills: %w", err)
	}

	replacer := strings.NewReplacer(
		"{{JOB_TITLE}}", job.Title,
		"{{JOB_DESCRIPTION}}", job.Description,
		"{{JOB_SKILLS}}", strings.Join(job.Skills, ", "),
		"{{CANDIDATE_SKILLS}}", string(skillsJSON),
	)
	prompt := replacer.Replace(skillTestsPrompt)

	raw, err := g.complete(ctx, "skill_tests", prompt)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &items); err != nil {
		g.logger.Warn("skill test generation returned unparseable output",
			zap.String("response_preview", logger.TruncateForLog(raw, g.maxLogLen)),
			zap.Error(err),
		)
		return []SkillTest{{Error: invalidJSONError, RawOutput: raw}}, nil
	}

	tests := make([]SkillTest, 0, len(items))
	for _, item := range items {
		tests = append(tests, SkillTest{
			Skill:      coerceString(item["Skill"]),
			Confidence: coerceInt(item["Confidence"]),
			Test:       coerceString(item["Test"]),
		})
	}

	return tests, nil
}

func (g *Gateway) complete(ctx context.Context, operation, prompt string) (string, error) {
	g.logger.Debug("oracle request",
		zap.String("operation", operation),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, g.maxLogLen)),
	)

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", operation, err)
	}

	g.logger.Debug("oracle response",
		zap.String("operation", operation),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, g.maxLogLen)),
	)

	return raw, nil
}

// extractJSON strips markdown code fences models like to wrap JSON in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%v", v)
	}
}

func coerceInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			result = append(result, s)
		}
	}
	return result
}
