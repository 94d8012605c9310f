package services

import (
	"fmt"
	"strings"

	"text-vectorizer/internal/vectorize"
)

// ValidationError collects every problem found in a request
type ValidationError struct {
	Errors []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func (e *ValidationError) add(format string, args ...interface{}) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// err returns nil when nothing was collected
func (e *ValidationError) err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Limits bounds the size of a single request. Zero disables a limit.
type Limits struct {
	MaxDocuments  int
	MaxComponents int
}

// ValidateTexts rejects an empty list and blank items and returns the
// trimmed texts in their original order.
func ValidateTexts(texts []string) ([]string, error) {
	verr := &ValidationError{}
	if len(texts) == 0 {
		verr.add("texts must not be empty")
		return nil, verr
	}

	cleaned := make([]string, len(texts))
	for i, text := range texts {
		cleaned[i] = strings.TrimSpace(text)
		if cleaned[i] == "" {
			verr.add("text at index %d is empty", i)
		}
	}

	if err := verr.err(); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// ValidateText rejects a blank text and returns it trimmed
func ValidateText(text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", &ValidationError{Errors: []string{"text must not be empty"}}
	}
	return cleaned, nil
}

// validateCorpus runs ValidateTexts and the document limit together so
// that the caller sees every message at once.
func (l Limits) validateCorpus(texts []string, verr *ValidationError) []string {
	if l.MaxDocuments > 0 && len(texts) > l.MaxDocuments {
		verr.add("too many texts: got %d, limit is %d", len(texts), l.MaxDocuments)
	}

	cleaned, err := ValidateTexts(texts)
	if err != nil {
		verr.Errors = append(verr.Errors, err.(*ValidationError).Errors...)
		return nil
	}
	return cleaned
}

func (l Limits) validateLSA(opts vectorize.LSAOptions, verr *ValidationError) {
	if opts.Components < 1 {
		verr.add("n_components must be at least 1, got %d", opts.Components)
	} else if l.MaxComponents > 0 && opts.Components > l.MaxComponents {
		verr.add("n_components must not exceed %d, got %d", l.MaxComponents, opts.Components)
	}
	if opts.TopTerms < 0 {
		verr.add("n_top_terms must not be negative, got %d", opts.TopTerms)
	}
}
