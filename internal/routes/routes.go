package routes

import (
	"net/http"

	"text-vectorizer/internal/handlers"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Health http.HandlerFunc
	Home   http.HandlerFunc

	Vectorize *handlers.VectorizeHandler
	Text      *handlers.TextHandler
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(router *mux.Router, h *Handlers) {
	// Health endpoints
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Main routes
	router.HandleFunc("/", h.Home).Methods(http.MethodGet)

	// Vectorization
	if h.Vectorize != nil {
		router.HandleFunc("/bag-of-words", h.Vectorize.BagOfWords).Methods(http.MethodPost, http.MethodOptions)
		router.HandleFunc("/tf-idf", h.Vectorize.TFIDF).Methods(http.MethodPost, http.MethodOptions)
		router.HandleFunc("/lsa", h.Vectorize.LSA).Methods(http.MethodPost, http.MethodOptions)

		api := router.PathPrefix("/api/v1").Subrouter()
		api.HandleFunc("/stats", h.Vectorize.Stats).Methods(http.MethodGet)
	}

	// Linguistic annotation
	if h.Text != nil {
		text := router.PathPrefix("/text_nltk").Subrouter()
		text.HandleFunc("/tokenize", h.Text.Tokenize).Methods(http.MethodPost, http.MethodOptions)
		text.HandleFunc("/stem", h.Text.Stem).Methods(http.MethodPost, http.MethodOptions)
		text.HandleFunc("/lemmatize", h.Text.Lemmatize).Methods(http.MethodPost, http.MethodOptions)
		text.HandleFunc("/pos", h.Text.POS).Methods(http.MethodPost, http.MethodOptions)
		text.HandleFunc("/ner", h.Text.NER).Methods(http.MethodPost, http.MethodOptions)
	}
}
