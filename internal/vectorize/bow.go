package vectorize

// BOWResult holds a bag-of-words model of a corpus
type BOWResult struct {
	Vocabulary []string   `json:"vocabulary"`
	Counts     *IntMatrix `json:"counts"`
}

// BuildBOW tokenizes texts and counts every vocabulary term per document.
// The count matrix has one row per text and one column per vocabulary term.
func BuildBOW(texts []string, opts TokenizeOptions) *BOWResult {
	tokenized := TokenizeMany(texts, opts)
	vocab := BuildVocabulary(tokenized)

	return &BOWResult{
		Vocabulary: vocab.Terms(),
		Counts:     CountMatrix(tokenized, vocab),
	}
}

// CountMatrix builds the document-by-term count matrix for a tokenized corpus
func CountMatrix(tokenized [][]string, vocab *Vocabulary) *IntMatrix {
	counts := NewIntMatrix(len(tokenized), vocab.Len())
	for doc, tokens := range tokenized {
		for _, tok := range tokens {
			col, ok := vocab.Index(tok)
			if !ok {
				continue
			}
			counts.Inc(doc, col)
		}
	}
	return counts
}
