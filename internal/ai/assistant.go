// Package ai defines the oracle contracts the screening pipeline depends on
// and the gateway that turns them into the three CV screening operations.
package ai

import "context"

// Completer is the single text-completion boundary: one prompt in, one raw
// model response out. Transport failures surface as errors.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Embedder encodes text into a dense vector. The same text must map to the
// same vector, and vectors must be cosine-comparable across calls.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Evaluation is the structured outcome of a deep single-candidate review.
type Evaluation struct {
	Relevance      int      `json:"Relevance"`
	Strengths      []string `json:"Strengths"`
	Weaknesses     []string `json:"Weaknesses"`
	Recommendation string   `json:"Recommendation"`
}

// EvaluationFailure is the marker emitted when the model response is not
// parseable. The raw response is kept under "content", matching the shape
// the original screening system exposed to its callers.
type EvaluationFailure struct {
	Error   string `json:"error"`
	Content string `json:"content"`
}

// EvaluationResult holds either a parsed evaluation or the failure marker.
type EvaluationResult struct {
	Evaluation *Evaluation        `json:"evaluation,omitempty"`
	Failure    *EvaluationFailure `json:"failure,omitempty"`
}

// Payload returns the variant that should be shown to the caller.
func (r *EvaluationResult) Payload() any {
	if r == nil {
		return nil
	}
	if r.Failure != nil {
		return r.Failure
	}
	return r.Evaluation
}

// SkillTest is one generated test. On a parse failure the gateway returns a
// single entry carrying only the error marker fields.
type SkillTest struct {
	Skill      string `json:"Skill,omitempty"`
	Confidence int    `json:"Confidence,omitempty"`
	Test       string `json:"Test,omitempty"`
	Error      string `json:"error,omitempty"`
	RawOutput  string `json:"raw_output,omitempty"`
}
