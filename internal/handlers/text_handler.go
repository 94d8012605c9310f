package handlers

import (
	"net/http"

	"text-vectorizer/internal/models"
	"text-vectorizer/internal/services"

	"github.com/sirupsen/logrus"
)

// TextHandler handles the linguistic annotation endpoints
type TextHandler struct {
	responder
	annotator *services.AnnotatorService
}

// NewTextHandler creates a new text handler
func NewTextHandler(annotator *services.AnnotatorService, logger *logrus.Entry) *TextHandler {
	return &TextHandler{
		responder: responder{logger: logger.WithField("component", "handlers")},
		annotator: annotator,
	}
}

// Tokenize handles tokenization requests
// @Summary Tokenize text
// @Description Split text into sentences and tokens
// @Tags text
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text to tokenize"
// @Success 200 {object} models.TokenizeResponse
// @Failure 400 {object} ErrorResponse
// @Router /text_nltk/tokenize [post]
func (h *TextHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.annotator.Tokenize(req.Text)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, result)
}

// Stem handles stemming requests
// @Summary Stem tokens
// @Description Stem every token with the Russian snowball stemmer
// @Tags text
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text to stem"
// @Success 200 {object} models.StemResponse
// @Failure 400 {object} ErrorResponse
// @Router /text_nltk/stem [post]
func (h *TextHandler) Stem(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.annotator.Stem(req.Text)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, result)
}

// Lemmatize handles lemmatization requests
// @Summary Lemmatize tokens
// @Description Map every token to its dictionary form using the morphology backend
// @Tags text
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text to lemmatize"
// @Success 200 {object} models.LemmatizeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /text_nltk/lemmatize [post]
func (h *TextHandler) Lemmatize(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.annotator.Lemmatize(r.Context(), req.Text)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, result)
}

// POS handles part-of-speech tagging requests
// @Summary POS tagging
// @Description Tag every token with its part of speech
// @Tags text
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text to tag"
// @Success 200 {object} models.POSResponse
// @Failure 400 {object} ErrorResponse
// @Router /text_nltk/pos [post]
func (h *TextHandler) POS(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.annotator.POS(req.Text)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, result)
}

// NER handles named entity recognition requests
// @Summary Named entities
// @Description Extract named entities from text
// @Tags text
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text to analyze"
// @Success 200 {object} models.NERResponse
// @Failure 400 {object} ErrorResponse
// @Router /text_nltk/ner [post]
func (h *TextHandler) NER(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.annotator.Entities(req.Text)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, result)
}
