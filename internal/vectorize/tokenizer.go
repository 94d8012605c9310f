// Package vectorize turns a corpus of documents into bag-of-words counts,
// TF-IDF weights and LSA embeddings.
//
// Every builder is a pure function of its inputs. Row order of every matrix
// follows corpus order and column order follows the sorted vocabulary.
package vectorize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenPattern matches maximal runs of Latin or Cyrillic letters
var tokenPattern = regexp.MustCompile(`[A-Za-zА-Яа-яЁё]+`)

// TokenizeOptions controls how documents are split into tokens
type TokenizeOptions struct {
	// Lower case-folds every token
	Lower bool
	// MinTokenLen drops tokens shorter than this many characters when greater than 1
	MinTokenLen int
}

// DefaultTokenizeOptions returns the options used when a caller sets none
func DefaultTokenizeOptions() TokenizeOptions {
	return TokenizeOptions{
		Lower:       true,
		MinTokenLen: 2,
	}
}

// Tokenize extracts alphabetic tokens from text in order of occurrence
func Tokenize(text string, opts TokenizeOptions) []string {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))

	for _, tok := range matches {
		if opts.Lower {
			tok = strings.ToLower(tok)
		}
		// Length is measured in characters, not bytes
		if opts.MinTokenLen > 1 && utf8.RuneCountInString(tok) < opts.MinTokenLen {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// TokenizeMany tokenizes every document independently, preserving corpus order
func TokenizeMany(texts []string, opts TokenizeOptions) [][]string {
	out := make([][]string, len(texts))
	for i, text := range texts {
		out[i] = Tokenize(text, opts)
	}
	return out
}
