package vectorize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalization selects how TF-IDF rows are scaled
type Normalization string

const (
	NormalizeL2   Normalization = "l2"
	NormalizeNone Normalization = "none"
)

// ParseNormalization validates a normalization name
func ParseNormalization(s string) (Normalization, error) {
	switch Normalization(s) {
	case NormalizeL2, NormalizeNone:
		return Normalization(s), nil
	default:
		return "", fmt.Errorf("invalid normalization %q: expected %q or %q", s, NormalizeL2, NormalizeNone)
	}
}

// TFIDFOptions controls TF-IDF weighting
type TFIDFOptions struct {
	TokenizeOptions
	// SmoothIDF adds one to document counts as if an extra document held every term
	SmoothIDF bool
	Normalize Normalization
}

// DefaultTFIDFOptions returns the options used when a caller sets none
func DefaultTFIDFOptions() TFIDFOptions {
	return TFIDFOptions{
		TokenizeOptions: DefaultTokenizeOptions(),
		SmoothIDF:       true,
		Normalize:       NormalizeL2,
	}
}

// TFIDFResult holds a TF-IDF model of a corpus
type TFIDFResult struct {
	Vocabulary []string  `json:"vocabulary"`
	TFIDF      *Matrix   `json:"tfidf"`
	IDF        []float64 `json:"idf"`
}

// BuildTFIDF weights bag-of-words counts by inverse document frequency
func BuildTFIDF(texts []string, opts TFIDFOptions) *TFIDFResult {
	bow := BuildBOW(texts, opts.TokenizeOptions)

	tf := TermFrequencies(bow.Counts)
	idf := InverseDocumentFrequencies(DocumentFrequencies(bow.Counts), bow.Counts.Rows, opts.SmoothIDF)

	tfidf := ApplyIDF(tf, idf)
	if opts.Normalize == NormalizeL2 {
		NormalizeRowsL2(tfidf)
	}

	return &TFIDFResult{
		Vocabulary: bow.Vocabulary,
		TFIDF:      tfidf,
		IDF:        idf,
	}
}

// TermFrequencies divides every count by its document's token total.
// Documents without tokens use a total of one and keep an all-zero row.
func TermFrequencies(counts *IntMatrix) *Matrix {
	tf := NewMatrix(counts.Rows, counts.Cols)
	for i := 0; i < counts.Rows; i++ {
		total := counts.RowSum(i)
		if total == 0 {
			total = 1
		}
		row := tf.Row(i)
		for j, c := range counts.Row(i) {
			row[j] = float64(c) / float64(total)
		}
	}
	return tf
}

// DocumentFrequencies counts, per term, the documents that contain it
func DocumentFrequencies(counts *IntMatrix) []int {
	df := make([]int, counts.Cols)
	for i := 0; i < counts.Rows; i++ {
		for j, c := range counts.Row(i) {
			if c > 0 {
				df[j]++
			}
		}
	}
	return df
}

// InverseDocumentFrequencies computes the idf weight of every term.
//
//	smooth:   ln((1 + n) / (1 + df)) + 1
//	unsmooth: ln(n / max(df, 1))
func InverseDocumentFrequencies(df []int, nDocs int, smooth bool) []float64 {
	idf := make([]float64, len(df))
	n := float64(nDocs)
	for j, d := range df {
		if smooth {
			idf[j] = math.Log((1+n)/(1+float64(d))) + 1
			continue
		}
		if d < 1 {
			d = 1
		}
		idf[j] = math.Log(n / float64(d))
	}
	return idf
}

// ApplyIDF returns a new matrix with every column of tf scaled by its idf weight
func ApplyIDF(tf *Matrix, idf []float64) *Matrix {
	out := NewMatrix(tf.Rows, tf.Cols)
	for i := 0; i < tf.Rows; i++ {
		floats.MulTo(out.Row(i), tf.Row(i), idf)
	}
	return out
}

// NormalizeRowsL2 scales every non-zero row to unit Euclidean length in place
func NormalizeRowsL2(m *Matrix) {
	if m.Cols == 0 {
		return
	}
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		norm := floats.Norm(row, 2)
		if norm == 0 {
			continue
		}
		floats.Scale(1/norm, row)
	}
}
