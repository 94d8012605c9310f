package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"text-vectorizer/internal/models"
	"text-vectorizer/internal/repositories"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordRequest(ctx context.Context, rec *repositories.RequestRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStats(ctx context.Context) (*repositories.UsageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.UsageStats), args.Error(1)
}

func (m *MockStatsRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// ============================================================================
// Test Setup
// ============================================================================

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func setupTestVectorizerService(limits Limits) (*VectorizerService, *MockStatsRepository) {
	mockStats := new(MockStatsRepository)
	return NewVectorizerService(mockStats, limits, testLogger()), mockStats
}

func intPtr(v int) *int          { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

func recordFor(endpoint string, docs, vocab int, failed bool) interface{} {
	return mock.MatchedBy(func(rec *repositories.RequestRecord) bool {
		return rec.Endpoint == endpoint &&
			rec.Documents == docs &&
			rec.VocabularySize == vocab &&
			rec.Failed == failed
	})
}

// ============================================================================
// Bag of Words
// ============================================================================

func TestVectorizerService_BagOfWords(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{})
	ctx := context.Background()

	mockStats.On("RecordRequest", ctx, recordFor(EndpointBagOfWords, 2, 3, false)).Return(nil)

	result, err := service.BagOfWords(ctx, &models.VectorizeRequest{
		Texts: []string{" Кот сидит ", "кот спит"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"кот", "сидит", "спит"}, result.Vocabulary)
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 0, 1}}, result.Counts.ToNested())
	mockStats.AssertExpectations(t)
}

func TestVectorizerService_BagOfWords_ValidationSkipsStats(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{})

	_, err := service.BagOfWords(context.Background(), &models.VectorizeRequest{Texts: []string{"ok", "  "}})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"text at index 1 is empty"}, verr.Errors)
	mockStats.AssertNotCalled(t, "RecordRequest", mock.Anything, mock.Anything)
}

func TestVectorizerService_BagOfWords_StatsFailureIgnored(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{})
	mockStats.On("RecordRequest", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	result, err := service.BagOfWords(context.Background(), &models.VectorizeRequest{Texts: []string{"один два"}})
	require.NoError(t, err)
	assert.Len(t, result.Vocabulary, 2)
}

func TestVectorizerService_NilStats(t *testing.T) {
	service := NewVectorizerService(nil, Limits{}, testLogger())

	_, err := service.BagOfWords(context.Background(), &models.VectorizeRequest{Texts: []string{"текст"}})
	assert.NoError(t, err)

	_, err = service.Stats(context.Background())
	assert.Error(t, err)
}

func TestVectorizerService_DocumentLimit(t *testing.T) {
	service, _ := setupTestVectorizerService(Limits{MaxDocuments: 1})

	_, err := service.BagOfWords(context.Background(), &models.VectorizeRequest{Texts: []string{"a", "b"}})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors[0], "too many texts")
}

// ============================================================================
// TF-IDF
// ============================================================================

func TestVectorizerService_TFIDF(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{})
	mockStats.On("RecordRequest", mock.Anything, recordFor(EndpointTFIDF, 2, 3, false)).Return(nil)

	result, err := service.TFIDF(context.Background(), &models.TFIDFRequest{
		VectorizeRequest: models.VectorizeRequest{
			Texts:       []string{"a b", "a c"},
			MinTokenLen: intPtr(1),
		},
		Normalize: stringPtr("none"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, result.Vocabulary)
	assert.InDelta(t, 0.5, result.TFIDF.At(0, 0), 1e-9)
	mockStats.AssertExpectations(t)
}

func TestVectorizerService_TFIDF_InvalidNormalize(t *testing.T) {
	service, _ := setupTestVectorizerService(Limits{})

	_, err := service.TFIDF(context.Background(), &models.TFIDFRequest{
		VectorizeRequest: models.VectorizeRequest{Texts: []string{}},
		Normalize:        stringPtr("l1"),
		SmoothIDF:        boolPtr(false),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"texts must not be empty",
		`normalize must be "l2" or "none"`,
	}, verr.Errors)
}

// ============================================================================
// LSA
// ============================================================================

func TestVectorizerService_LSA(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{MaxComponents: 10})
	mockStats.On("RecordRequest", mock.Anything, mock.Anything).Return(nil)

	result, err := service.LSA(context.Background(), &models.LSARequest{
		VectorizeRequest: models.VectorizeRequest{
			Texts: []string{"кошка ловит мышь", "собака ловит мяч", "кошка спит"},
		},
		NComponents: intPtr(2),
		NTopTerms:   intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.DocEmbeddings.Rows)
	assert.Equal(t, 2, result.DocEmbeddings.Cols)
	assert.Equal(t, 2, result.Components.Rows)
	require.Len(t, result.TopTerms, 2)
	assert.Len(t, result.TopTerms[0], 3)
	assert.Len(t, result.SingularValues, 2)
	mockStats.AssertNumberOfCalls(t, "RecordRequest", 1)
}

func TestVectorizerService_LSA_Validation(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{MaxComponents: 5})

	_, err := service.LSA(context.Background(), &models.LSARequest{
		VectorizeRequest: models.VectorizeRequest{Texts: []string{"текст"}},
		NComponents:      intPtr(6),
		NTopTerms:        intPtr(-1),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 2)
	mockStats.AssertNotCalled(t, "RecordRequest", mock.Anything, mock.Anything)
}

// ============================================================================
// Stats
// ============================================================================

func TestVectorizerService_Stats(t *testing.T) {
	service, mockStats := setupTestVectorizerService(Limits{})
	ctx := context.Background()
	want := &repositories.UsageStats{Backend: "memory", TotalRequests: 3}

	mockStats.On("GetStats", ctx).Return(want, nil)

	got, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Same(t, want, got)
}
