package vectorize

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrSVDFailed is returned when the singular value decomposition does not converge
var ErrSVDFailed = errors.New("singular value decomposition failed to converge")

// LSAOptions controls latent semantic analysis
type LSAOptions struct {
	TokenizeOptions
	// Components is the requested rank K, clamped to the vocabulary size
	Components int
	// TopTerms is the number of terms reported per component
	TopTerms int
}

// DefaultLSAOptions returns the options used when a caller sets none
func DefaultLSAOptions() LSAOptions {
	return LSAOptions{
		TokenizeOptions: DefaultTokenizeOptions(),
		Components:      2,
		TopTerms:        10,
	}
}

// LSAResult holds the low-rank model of a corpus
type LSAResult struct {
	Vocabulary     []string   `json:"vocabulary"`
	DocEmbeddings  *Matrix    `json:"doc_embeddings"`
	Components     *Matrix    `json:"components"`
	TopTerms       [][]string `json:"top_terms"`
	SingularValues []float64  `json:"singular_values"`
}

// SVDResult is a rank-K truncated decomposition of a documents x terms matrix
type SVDResult struct {
	// Embeddings is U·Σ, documents x K
	Embeddings *Matrix
	// Components holds the right singular vectors, K x terms
	Components *Matrix
	// Values holds the K singular values in descending order
	Values []float64
}

// BuildLSA reduces the TF-IDF matrix of texts to opts.Components dimensions.
// The TF-IDF input always uses smoothed idf and L2 row normalization.
func BuildLSA(texts []string, opts LSAOptions) (*LSAResult, error) {
	tfidf := BuildTFIDF(texts, TFIDFOptions{
		TokenizeOptions: opts.TokenizeOptions,
		SmoothIDF:       true,
		Normalize:       NormalizeL2,
	})

	k := EffectiveComponents(opts.Components, len(tfidf.Vocabulary))
	svd, err := TruncatedSVD(tfidf.TFIDF, k)
	if err != nil {
		return nil, err
	}

	return &LSAResult{
		Vocabulary:     tfidf.Vocabulary,
		DocEmbeddings:  svd.Embeddings,
		Components:     svd.Components,
		TopTerms:       TopTerms(svd.Components, tfidf.Vocabulary, opts.TopTerms),
		SingularValues: svd.Values,
	}, nil
}

// EffectiveComponents clamps the requested rank to the vocabulary size.
// An empty vocabulary yields a single degenerate component.
func EffectiveComponents(requested, vocabSize int) int {
	if vocabSize == 0 {
		return 1
	}
	return min(requested, vocabSize)
}

// TruncatedSVD keeps the k largest singular triplets of x.
//
// Component signs are fixed so that the largest-magnitude coefficient of every
// component is positive. Components beyond the rank of x are zero.
func TruncatedSVD(x *Matrix, k int) (*SVDResult, error) {
	if k < 0 {
		k = 0
	}
	n, v := x.Rows, x.Cols

	res := &SVDResult{
		Embeddings: NewMatrix(n, k),
		Components: NewMatrix(k, v),
		Values:     make([]float64, k),
	}
	// gonum does not accept zero-sized matrices
	if n == 0 || v == 0 || k == 0 {
		return res, nil
	}

	a := mat.NewDense(n, v, x.Data)

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	values := svd.Values(nil)
	var vt mat.Dense
	svd.VTo(&vt)

	for c := 0; c < k && c < len(values); c++ {
		row := res.Components.Row(c)
		for t := 0; t < v; t++ {
			row[t] = vt.At(t, c)
		}
		flipSign(row)
		res.Values[c] = values[c]
	}

	// Projecting onto the sign-fixed components equals U·Σ with matching signs
	var proj mat.Dense
	proj.Mul(a, mat.NewDense(k, v, res.Components.Data).T())
	for d := 0; d < n; d++ {
		for c := 0; c < k; c++ {
			res.Embeddings.Set(d, c, proj.At(d, c))
		}
	}

	return res, nil
}

// flipSign negates row when its largest-magnitude entry is negative
func flipSign(row []float64) {
	best := 0
	for i, val := range row {
		if math.Abs(val) > math.Abs(row[best]) {
			best = i
		}
	}
	if len(row) > 0 && row[best] < 0 {
		floats.Scale(-1, row)
	}
}

// TopTerms lists, for every component, the n terms with the largest absolute
// weight in descending order. Equal weights keep vocabulary order.
func TopTerms(components *Matrix, vocab []string, n int) [][]string {
	out := make([][]string, components.Rows)
	for c := range out {
		row := components.Row(c)

		order := make([]int, len(row))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return math.Abs(row[order[a]]) > math.Abs(row[order[b]])
		})

		limit := max(min(n, len(order)), 0)
		terms := make([]string, 0, limit)
		for _, idx := range order[:limit] {
			terms = append(terms, vocab[idx])
		}
		out[c] = terms
	}
	return out
}
