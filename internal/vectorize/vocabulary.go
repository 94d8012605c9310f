package vectorize

import "sort"

// Vocabulary is the sorted set of distinct tokens of a corpus.
// A term's index is its position in the sorted sequence.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// BuildVocabulary collects the distinct tokens of a tokenized corpus
func BuildVocabulary(docs [][]string) *Vocabulary {
	seen := make(map[string]struct{})
	for _, tokens := range docs {
		for _, tok := range tokens {
			seen[tok] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for tok := range seen {
		terms = append(terms, tok)
	}
	// Byte-wise comparison of UTF-8 equals code point order
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	return &Vocabulary{terms: terms, index: index}
}

// Len returns the number of distinct terms
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the sorted terms
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Term returns the term at index i
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Index returns the column of term and whether it is part of the vocabulary
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}
