package vectorize

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVocabulary_SortedAndDeterministic(t *testing.T) {
	a := BuildVocabulary([][]string{{"спит", "кот"}, {"кот", "сидит"}})
	b := BuildVocabulary([][]string{{"сидит"}, {"кот", "спит", "кот"}})

	assert.Equal(t, []string{"кот", "сидит", "спит"}, a.Terms())
	assert.Equal(t, a.Terms(), b.Terms())

	for i, term := range a.Terms() {
		idx, ok := b.Index(term)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := a.Index("пёс")
	assert.False(t, ok)
}

func TestBuildVocabulary_CaseSensitive(t *testing.T) {
	vocab := BuildVocabulary([][]string{{"b", "B", "a", "A"}})
	assert.Equal(t, []string{"A", "B", "a", "b"}, vocab.Terms())
}

func TestBuildBOW_Scenario(t *testing.T) {
	res := BuildBOW([]string{"кот сидит", "кот спит"}, TokenizeOptions{Lower: true, MinTokenLen: 2})

	assert.Equal(t, []string{"кот", "сидит", "спит"}, res.Vocabulary)
	assert.Equal(t, [][]int{{1, 1, 0}, {1, 0, 1}}, res.Counts.ToNested())
}

func TestBuildBOW_Properties(t *testing.T) {
	texts := []string{
		"Мама мыла раму, мама мыла пол.",
		"The quick brown fox jumps over the lazy dog",
		"!!! 123 ...",
		"рама Рама РАМА",
	}
	opts := DefaultTokenizeOptions()
	res := BuildBOW(texts, opts)

	assert.True(t, sort.StringsAreSorted(res.Vocabulary))
	seen := make(map[string]bool)
	for _, term := range res.Vocabulary {
		assert.False(t, seen[term], "duplicate term %q", term)
		seen[term] = true
	}

	require.Equal(t, len(texts), res.Counts.Rows)
	require.Equal(t, len(res.Vocabulary), res.Counts.Cols)
	for i, text := range texts {
		assert.Equal(t, len(Tokenize(text, opts)), res.Counts.RowSum(i), "row %d", i)
		for _, c := range res.Counts.Row(i) {
			assert.GreaterOrEqual(t, c, 0)
		}
	}
}

func TestBuildBOW_AllDocumentsEmptyAfterFiltering(t *testing.T) {
	res := BuildBOW([]string{"a b", "1 2 3"}, DefaultTokenizeOptions())

	assert.Empty(t, res.Vocabulary)
	assert.Equal(t, 2, res.Counts.Rows)
	assert.Equal(t, 0, res.Counts.Cols)
	assert.Equal(t, [][]int{{}, {}}, res.Counts.ToNested())
}

func TestBuildBOW_EmptyCorpus(t *testing.T) {
	res := BuildBOW(nil, DefaultTokenizeOptions())

	assert.Empty(t, res.Vocabulary)
	assert.Equal(t, 0, res.Counts.Rows)
	assert.Equal(t, 0, res.Counts.Cols)
}

func TestBOWResult_JSON(t *testing.T) {
	res := BuildBOW([]string{"кот сидит", "кот спит"}, DefaultTokenizeOptions())

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vocabulary":["кот","сидит","спит"],"counts":[[1,1,0],[1,0,1]]}`, string(data))

	var decoded BOWResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.Counts, decoded.Counts)
}

func TestIntMatrix_UnmarshalRagged(t *testing.T) {
	var m IntMatrix
	err := json.Unmarshal([]byte(`[[1,2],[3]]`), &m)
	assert.Error(t, err)
}
