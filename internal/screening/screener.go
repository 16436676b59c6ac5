// Package screening contains the scoring pipeline: the structured matcher,
// the embedding similarity blend, and the ranker that orders a CV corpus
// against a single job posting.
package screening

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cv-screener/internal/ai"
	"cv-screener/internal/cleaner"
	"cv-screener/internal/cv"
	"cv-screener/internal/jobs"
)

// Blend weights for the final score.
const (
	embeddingWeight  = 0.6
	structuredWeight = 0.4
)

const defaultWorkers = 4

// extractor is the slice of the gateway the ranker needs.
type extractor interface {
	ExtractCV(ctx context.Context, normalizedText string) (*cv.Extraction, error)
}

// ScoredCandidate is one ranked CV. The extraction is kept so callers can
// reuse it without a second oracle round-trip.
type ScoredCandidate struct {
	Name       string         `json:"cv_name"`
	FinalScore float64        `json:"score"`
	Text       string         `json:"-"`
	Extraction *cv.Extraction `json:"-"`
}

// Screener ranks CV corpora against job postings. It holds no mutable state
// across calls; every ranking run re-scores the whole corpus.
type Screener struct {
	extractor extractor
	embedder  ai.Embedder
	logger    *zap.Logger
	workers   int
}

func New(extractor extractor, embedder ai.Embedder, workers int, logger *zap.Logger) *Screener {
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Screener{
		extractor: extractor,
		embedder:  embedder,
		logger:    logger,
		workers:   workers,
	}
}

// Rank scores every CV in the corpus against the job and returns candidates
// ordered by descending final score. Per-CV work runs on a bounded worker
// group; a failed extraction or embedding degrades that one candidate and
// never aborts the batch. Only a failure to embed the job itself fails the
// whole run.
func (s *Screener) Rank(ctx context.Context, job *jobs.Job, corpus *cv.Corpus) ([]*ScoredCandidate, error) {
	jobVector, err := s.embedder.Embed(ctx, job.Text())
	if err != nil {
		return nil, fmt.Errorf("embedding job text: %w", err)
	}

	results := make([]*ScoredCandidate, corpus.Len())

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, doc := range corpus.Items {
		group.Go(func() error {
			results[i] = s.score(groupCtx, job, jobVector, doc)
			return nil
		})
	}

	// Workers never return errors; degraded candidates carry markers instead.
	_ = group.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	return results, nil
}

func (s *Screener) score(ctx context.Context, job *jobs.Job, jobVector []float64, doc *cv.Document) *ScoredCandidate {
	embeddingScore := 0.0
	cvVector, err := s.embedder.Embed(ctx, doc.Text)
	if err != nil {
		// Missing raw score maps to 0, same as a NaN cosine.
		s.logger.Warn("embedding cv failed", zap.String("cv_name", doc.Name), zap.Error(err))
	} else {
		embeddingScore = CosineToUnit(Cosine(jobVector, cvVector))
	}

	extraction, err := s.extractor.ExtractCV(ctx, cleaner.Normalize(doc.Text))
	if err != nil {
		s.logger.Warn("cv extraction failed", zap.String("cv_name", doc.Name), zap.Error(err))
		extraction = &cv.Extraction{Failure: &cv.ExtractionFailure{Error: err.Error()}}
	}

	var parsed *cv.ParsedCV
	if extraction.OK() {
		parsed = extraction.CV
	}

	structuredScore := StructuredScore(parsed, job)
	final := embeddingWeight*embeddingScore + structuredWeight*structuredScore

	s.logger.Debug("scored candidate",
		zap.String("cv_name", doc.Name),
		zap.Float64("embedding_score", embeddingScore),
		zap.Float64("structured_score", structuredScore),
		zap.Float64("final_score", final),
	)

	return &ScoredCandidate{
		Name:       doc.Name,
		FinalScore: final,
		Text:       doc.Text,
		Extraction: extraction,
	}
}
