package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"text-vectorizer/internal/repositories"
	"text-vectorizer/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func setupVectorizeHandler(limits services.Limits) (*VectorizeHandler, *repositories.MemoryStatsRepository) {
	stats := repositories.NewMemoryStatsRepository()
	service := services.NewVectorizerService(stats, limits, testLogger())
	return NewVectorizeHandler(service, testLogger()), stats
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestVectorizeHandler_BagOfWords(t *testing.T) {
	h, _ := setupVectorizeHandler(services.Limits{})

	rec := postJSON(t, h.BagOfWords, "/bag-of-words", `{"texts":["Кот сидит","кот спит"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Vocabulary []string `json:"vocabulary"`
		Counts     [][]int  `json:"counts"`
	}
	decodeBody(t, rec, &body)

	assert.Equal(t, []string{"кот", "сидит", "спит"}, body.Vocabulary)
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 0, 1}}, body.Counts)
}

func TestVectorizeHandler_TFIDF_Defaults(t *testing.T) {
	h, _ := setupVectorizeHandler(services.Limits{})

	rec := postJSON(t, h.TFIDF, "/tf-idf", `{"texts":["a b","a c"],"min_token_len":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vocabulary []string    `json:"vocabulary"`
		TFIDF      [][]float64 `json:"tfidf"`
		IDF        []float64   `json:"idf"`
	}
	decodeBody(t, rec, &body)

	assert.Equal(t, []string{"a", "b", "c"}, body.Vocabulary)
	require.Len(t, body.IDF, 3)
	assert.InDelta(t, 1.0, body.IDF[0], 1e-9)
	require.Len(t, body.TFIDF, 2)

	var norm float64
	for _, v := range body.TFIDF[0] {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestVectorizeHandler_LSA(t *testing.T) {
	h, _ := setupVectorizeHandler(services.Limits{MaxComponents: 10})

	rec := postJSON(t, h.LSA, "/lsa",
		`{"texts":["кошка ловит мышь","собака ловит мяч","кошка спит"],"n_components":2,"n_top_terms":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vocabulary     []string    `json:"vocabulary"`
		DocEmbeddings  [][]float64 `json:"doc_embeddings"`
		Components     [][]float64 `json:"components"`
		TopTerms       [][]string  `json:"top_terms"`
		SingularValues []float64   `json:"singular_values"`
	}
	decodeBody(t, rec, &body)

	require.Len(t, body.DocEmbeddings, 3)
	assert.Len(t, body.DocEmbeddings[0], 2)
	require.Len(t, body.Components, 2)
	assert.Len(t, body.Components[0], len(body.Vocabulary))
	assert.Len(t, body.TopTerms, 2)
	assert.Len(t, body.SingularValues, 2)
}

func TestVectorizeHandler_Errors(t *testing.T) {
	h, _ := setupVectorizeHandler(services.Limits{MaxComponents: 5})

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		body       string
		wantStatus int
		wantErrors []string
	}{
		{
			name:       "invalid json",
			handler:    h.BagOfWords,
			body:       `{"texts":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty texts",
			handler:    h.BagOfWords,
			body:       `{"texts":[]}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"texts must not be empty"},
		},
		{
			name:       "blank text",
			handler:    h.TFIDF,
			body:       `{"texts":["ok","  "]}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"text at index 1 is empty"},
		},
		{
			name:       "bad normalize",
			handler:    h.TFIDF,
			body:       `{"texts":["ok"],"normalize":"max"}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{`normalize must be "l2" or "none"`},
		},
		{
			name:       "too many components",
			handler:    h.LSA,
			body:       `{"texts":["ok"],"n_components":6}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"n_components must not exceed 5, got 6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, tt.handler, "/", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), body.Error)
			assert.Equal(t, tt.wantErrors, body.Errors)
		})
	}
}

func TestVectorizeHandler_Stats(t *testing.T) {
	h, _ := setupVectorizeHandler(services.Limits{})

	postJSON(t, h.BagOfWords, "/bag-of-words", `{"texts":["один два"]}`)
	postJSON(t, h.BagOfWords, "/bag-of-words", `{"texts":["три"]}`)

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats repositories.UsageStats
	decodeBody(t, rec, &stats)

	assert.Equal(t, "memory", stats.Backend)
	assert.Equal(t, int64(2), stats.TotalRequests)
	require.Len(t, stats.Endpoints, 1)
	assert.Equal(t, services.EndpointBagOfWords, stats.Endpoints[0].Endpoint)
	assert.Equal(t, int64(3), stats.Endpoints[0].VocabularyTerms)
	assert.NotContains(t, rec.Body.String(), "один", "stats never hold vocabulary")
}

func TestHomeHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HomeHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	gotBody := rec.Body.String()
	assert.Contains(t, gotBody, "/lsa")
	assert.True(t, strings.Contains(gotBody, "Пример текста"))

	rec = httptest.NewRecorder()
	HomeHandler(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Server is healthy","status":"success"}`, rec.Body.String())
}
