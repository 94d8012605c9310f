package handlers

import (
	"encoding/json"
	"net/http"

	"text-vectorizer/internal/models"
)

// Endpoints lists the routes reported by the root handler
var Endpoints = []string{
	"/health",
	"/bag-of-words",
	"/tf-idf",
	"/lsa",
	"/text_nltk/tokenize",
	"/text_nltk/stem",
	"/text_nltk/lemmatize",
	"/text_nltk/pos",
	"/text_nltk/ner",
	"/api/v1/stats",
}

// HomeHandler godoc
// @Summary Service description
// @Description Lists the available endpoints with an example request
// @Tags general
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	response := models.RootResponse{
		Message:   "Text vectorization service",
		Endpoints: Endpoints,
		Example: models.ExampleRequest{
			Method: http.MethodPost,
			Path:   "/bag-of-words",
			Body: map[string]interface{}{
				"texts":         []string{"Пример текста"},
				"lower":         true,
				"min_token_len": 2,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
