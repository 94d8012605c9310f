package vectorize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const tolerance = 1e-9

func TestParseNormalization(t *testing.T) {
	tests := []struct {
		input   string
		want    Normalization
		wantErr bool
	}{
		{input: "l2", want: NormalizeL2},
		{input: "none", want: NormalizeNone},
		{input: "L2", wantErr: true},
		{input: "l1", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNormalization(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildTFIDF_SmoothedScenario(t *testing.T) {
	res := BuildTFIDF([]string{"a b", "b c"}, TFIDFOptions{
		TokenizeOptions: TokenizeOptions{Lower: true, MinTokenLen: 1},
		SmoothIDF:       true,
		Normalize:       NormalizeNone,
	})

	require.Equal(t, []string{"a", "b", "c"}, res.Vocabulary)

	rare := math.Log(3.0/2.0) + 1
	assert.InDeltaSlice(t, []float64{rare, 1.0, rare}, res.IDF, tolerance)
	assert.InDelta(t, 1.405, res.IDF[0], 1e-3)

	assert.InDeltaSlice(t, []float64{0.5 * rare, 0.5, 0}, res.TFIDF.Row(0), tolerance)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5 * rare}, res.TFIDF.Row(1), tolerance)
	assert.InDelta(t, 0.7027, res.TFIDF.At(0, 0), 1e-4)
}

func TestBuildTFIDF_Unsmoothed(t *testing.T) {
	res := BuildTFIDF([]string{"a b", "b c"}, TFIDFOptions{
		TokenizeOptions: TokenizeOptions{Lower: true, MinTokenLen: 1},
		SmoothIDF:       false,
		Normalize:       NormalizeNone,
	})

	assert.InDeltaSlice(t, []float64{math.Ln2, 0, math.Ln2}, res.IDF, tolerance)
	assert.InDeltaSlice(t, []float64{0.5 * math.Ln2, 0, 0}, res.TFIDF.Row(0), tolerance)
}

func TestBuildTFIDF_L2RowsHaveUnitNorm(t *testing.T) {
	texts := []string{
		"кот сидит на окне",
		"кот спит на диване, кот доволен",
		"...",
		"собака лает на кота",
	}
	res := BuildTFIDF(texts, DefaultTFIDFOptions())

	for i := 0; i < res.TFIDF.Rows; i++ {
		norm := floats.Norm(res.TFIDF.Row(i), 2)
		if i == 2 {
			assert.Equal(t, 0.0, norm, "empty document must stay zero")
			continue
		}
		assert.InDelta(t, 1.0, norm, tolerance, "row %d", i)
	}
}

func TestBuildTFIDF_SmoothedIDFNonNegative(t *testing.T) {
	for _, texts := range [][]string{
		{"один"},
		{"один два", "два три", "три один два"},
		{"слово", "слово", "слово"},
	} {
		res := BuildTFIDF(texts, DefaultTFIDFOptions())
		for _, w := range res.IDF {
			assert.GreaterOrEqual(t, w, 0.0)
		}
	}
}

func TestBuildTFIDF_EmptyDocumentsProduceZeroRows(t *testing.T) {
	res := BuildTFIDF([]string{"1 2", "?"}, DefaultTFIDFOptions())

	assert.Empty(t, res.Vocabulary)
	assert.Empty(t, res.IDF)
	assert.Equal(t, 2, res.TFIDF.Rows)
	assert.Equal(t, 0, res.TFIDF.Cols)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vocabulary":[],"tfidf":[[],[]],"idf":[]}`, string(data))
}

func TestTermFrequencies_ZeroRow(t *testing.T) {
	counts := NewIntMatrix(2, 2)
	counts.Inc(0, 0)
	counts.Inc(0, 1)
	counts.Inc(0, 1)

	tf := TermFrequencies(counts)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3}, tf.Row(0), tolerance)
	assert.Equal(t, []float64{0, 0}, tf.Row(1))
}

func TestDocumentFrequencies(t *testing.T) {
	res := BuildBOW([]string{"aa bb bb", "bb cc", "cc"}, DefaultTokenizeOptions())
	assert.Equal(t, []int{1, 2, 2}, DocumentFrequencies(res.Counts))
}

func TestBuildTFIDF_Idempotent(t *testing.T) {
	texts := []string{"красная шапочка", "серый волк и красная шапочка", "бабушка"}
	a := BuildTFIDF(texts, DefaultTFIDFOptions())
	b := BuildTFIDF(texts, DefaultTFIDFOptions())

	assert.Equal(t, a, b)
}
