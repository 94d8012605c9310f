package handlers

import (
	"net/http"

	"text-vectorizer/internal/models"
	"text-vectorizer/internal/services"

	"github.com/sirupsen/logrus"
)

// VectorizeHandler handles HTTP requests for the vectorization endpoints
type VectorizeHandler struct {
	responder
	service *services.VectorizerService
}

// NewVectorizeHandler creates a new vectorize handler
func NewVectorizeHandler(service *services.VectorizerService, logger *logrus.Entry) *VectorizeHandler {
	return &VectorizeHandler{
		responder: responder{logger: logger.WithField("component", "handlers")},
		service:   service,
	}
}

// BagOfWords handles bag-of-words requests
// @Summary Bag of words
// @Description Build the sorted vocabulary and the document-term count matrix
// @Tags vectorize
// @Accept json
// @Produce json
// @Param request body models.VectorizeRequest true "Texts and tokenizer options"
// @Success 200 {object} vectorize.BOWResult
// @Failure 400 {object} ErrorResponse
// @Router /bag-of-words [post]
func (h *VectorizeHandler) BagOfWords(w http.ResponseWriter, r *http.Request) {
	var req models.VectorizeRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.BagOfWords(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// TFIDF handles tf-idf requests
// @Summary TF-IDF
// @Description Build the TF-IDF matrix with optional idf smoothing and L2 normalization
// @Tags vectorize
// @Accept json
// @Produce json
// @Param request body models.TFIDFRequest true "Texts and weighting options"
// @Success 200 {object} vectorize.TFIDFResult
// @Failure 400 {object} ErrorResponse
// @Router /tf-idf [post]
func (h *VectorizeHandler) TFIDF(w http.ResponseWriter, r *http.Request) {
	var req models.TFIDFRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.TFIDF(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// LSA handles latent semantic analysis requests
// @Summary Latent semantic analysis
// @Description Reduce the TF-IDF matrix with a truncated SVD
// @Tags vectorize
// @Accept json
// @Produce json
// @Param request body models.LSARequest true "Texts and decomposition options"
// @Success 200 {object} vectorize.LSAResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lsa [post]
func (h *VectorizeHandler) LSA(w http.ResponseWriter, r *http.Request) {
	var req models.LSARequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.LSA(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// Stats returns usage counters of the vectorization endpoints
// @Summary Usage statistics
// @Description Per-endpoint request counts, documents processed and timings
// @Tags stats
// @Produce json
// @Success 200 {object} repositories.UsageStats
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/stats [get]
func (h *VectorizeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, stats)
}
