package services

import (
	"context"
	"fmt"
	"time"

	"text-vectorizer/internal/models"
	"text-vectorizer/internal/repositories"
	"text-vectorizer/internal/vectorize"

	"github.com/sirupsen/logrus"
)

// Endpoint names used for usage statistics
const (
	EndpointBagOfWords = "bag-of-words"
	EndpointTFIDF      = "tf-idf"
	EndpointLSA        = "lsa"
)

// VectorizerService validates requests, runs the vectorization core and
// records usage. Every call builds its model from scratch.
type VectorizerService struct {
	stats  repositories.StatsRepository
	limits Limits
	logger *logrus.Entry
}

// NewVectorizerService creates a new vectorizer service. stats may be nil.
func NewVectorizerService(stats repositories.StatsRepository, limits Limits, logger *logrus.Entry) *VectorizerService {
	return &VectorizerService{
		stats:  stats,
		limits: limits,
		logger: logger.WithField("component", "services"),
	}
}

// BagOfWords builds the vocabulary and count matrix of the request texts
func (s *VectorizerService) BagOfWords(ctx context.Context, req *models.VectorizeRequest) (*vectorize.BOWResult, error) {
	verr := &ValidationError{}
	texts := s.limits.validateCorpus(req.Texts, verr)
	if err := verr.err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := vectorize.BuildBOW(texts, req.TokenizeOptions())
	s.record(ctx, EndpointBagOfWords, len(texts), len(result.Vocabulary), time.Since(start), nil)

	return result, nil
}

// TFIDF builds the TF-IDF matrix of the request texts
func (s *VectorizerService) TFIDF(ctx context.Context, req *models.TFIDFRequest) (*vectorize.TFIDFResult, error) {
	verr := &ValidationError{}
	texts := s.limits.validateCorpus(req.Texts, verr)

	normalize, err := vectorize.ParseNormalization(req.NormalizeValue())
	if err != nil {
		verr.add("normalize must be %q or %q", vectorize.NormalizeL2, vectorize.NormalizeNone)
	}
	if err := verr.err(); err != nil {
		return nil, err
	}

	opts := vectorize.TFIDFOptions{
		TokenizeOptions: req.TokenizeOptions(),
		SmoothIDF:       req.SmoothIDFValue(),
		Normalize:       normalize,
	}

	start := time.Now()
	result := vectorize.BuildTFIDF(texts, opts)
	s.record(ctx, EndpointTFIDF, len(texts), len(result.Vocabulary), time.Since(start), nil)

	return result, nil
}

// LSA reduces the TF-IDF matrix of the request texts with a truncated SVD
func (s *VectorizerService) LSA(ctx context.Context, req *models.LSARequest) (*vectorize.LSAResult, error) {
	verr := &ValidationError{}
	texts := s.limits.validateCorpus(req.Texts, verr)
	opts := req.LSAOptions()
	s.limits.validateLSA(opts, verr)
	if err := verr.err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := vectorize.BuildLSA(texts, opts)
	if err != nil {
		s.record(ctx, EndpointLSA, len(texts), 0, time.Since(start), err)
		return nil, fmt.Errorf("lsa over %d texts: %w", len(texts), err)
	}
	s.record(ctx, EndpointLSA, len(texts), len(result.Vocabulary), time.Since(start), nil)

	return result, nil
}

// Stats returns the usage counters
func (s *VectorizerService) Stats(ctx context.Context) (*repositories.UsageStats, error) {
	if s.stats == nil {
		return nil, fmt.Errorf("usage statistics are not configured")
	}
	return s.stats.GetStats(ctx)
}

// record stores a usage record. Storage failures never fail the request.
func (s *VectorizerService) record(ctx context.Context, endpoint string, docs, vocab int, elapsed time.Duration, cause error) {
	entry := s.logger.WithFields(logrus.Fields{
		"endpoint":   endpoint,
		"documents":  docs,
		"vocabulary": vocab,
		"duration":   elapsed,
	})
	if cause != nil {
		entry.WithError(cause).Error("Vectorization failed")
	} else {
		entry.Debug("Vectorization complete")
	}

	if s.stats == nil {
		return
	}

	rec := &repositories.RequestRecord{
		Endpoint:       endpoint,
		Documents:      docs,
		VocabularySize: vocab,
		Duration:       elapsed,
		Failed:         cause != nil,
	}
	if err := s.stats.RecordRequest(ctx, rec); err != nil {
		entry.WithError(err).Warn("Failed to record usage statistics")
	}
}
