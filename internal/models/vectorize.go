package models

import "text-vectorizer/internal/vectorize"

// VectorizeRequest is the common payload of the vectorization endpoints.
// Absent optional fields take their defaults.
type VectorizeRequest struct {
	Texts       []string `json:"texts"`                   // Input documents
	Lower       *bool    `json:"lower,omitempty"`         // Lowercase tokens (default: true)
	MinTokenLen *int     `json:"min_token_len,omitempty"` // Minimum token length (default: 2)
}

// TokenizeOptions resolves the tokenizer settings of the request
func (r *VectorizeRequest) TokenizeOptions() vectorize.TokenizeOptions {
	opts := vectorize.DefaultTokenizeOptions()
	if r.Lower != nil {
		opts.Lower = *r.Lower
	}
	if r.MinTokenLen != nil {
		opts.MinTokenLen = *r.MinTokenLen
	}
	return opts
}

// TFIDFRequest is the payload of the TF-IDF endpoint
type TFIDFRequest struct {
	VectorizeRequest
	SmoothIDF *bool   `json:"smooth_idf,omitempty"` // Apply smooth IDF (default: true)
	Normalize *string `json:"normalize,omitempty"`  // "l2" or "none" (default: "l2")
}

// NormalizeValue returns the requested normalization name
func (r *TFIDFRequest) NormalizeValue() string {
	if r.Normalize == nil {
		return string(vectorize.NormalizeL2)
	}
	return *r.Normalize
}

// SmoothIDFValue returns the requested idf smoothing
func (r *TFIDFRequest) SmoothIDFValue() bool {
	if r.SmoothIDF == nil {
		return true
	}
	return *r.SmoothIDF
}

// LSARequest is the payload of the LSA endpoint
type LSARequest struct {
	VectorizeRequest
	NComponents *int `json:"n_components,omitempty"` // Number of SVD components (default: 2)
	NTopTerms   *int `json:"n_top_terms,omitempty"`  // Number of top terms per component (default: 10)
}

// LSAOptions resolves the request to core options
func (r *LSARequest) LSAOptions() vectorize.LSAOptions {
	opts := vectorize.DefaultLSAOptions()
	opts.TokenizeOptions = r.TokenizeOptions()
	if r.NComponents != nil {
		opts.Components = *r.NComponents
	}
	if r.NTopTerms != nil {
		opts.TopTerms = *r.NTopTerms
	}
	return opts
}
