package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"text-vectorizer/internal/models"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
	"github.com/sirupsen/logrus"
)

// Lemmatizer maps tokens to their dictionary forms, one lemma per token
type Lemmatizer interface {
	Lemmatize(ctx context.Context, tokens []string) ([]string, error)
}

// AnnotatorService provides linguistic annotation of a single text
type AnnotatorService struct {
	lemmatizer Lemmatizer
	modelDir   string
	logger     *logrus.Entry

	// model is loaded at most once and only read afterwards
	modelOnce sync.Once
	model     *prose.Model
	modelErr  error
}

// NewAnnotatorService creates an annotator. lemmatizer may be nil, in which
// case Lemmatize reports ErrMorphBackendUnavailable. An empty modelDir uses
// the model bundled with prose.
func NewAnnotatorService(lemmatizer Lemmatizer, modelDir string, logger *logrus.Entry) *AnnotatorService {
	return &AnnotatorService{
		lemmatizer: lemmatizer,
		modelDir:   modelDir,
		logger:     logger.WithField("component", "annotator"),
	}
}

// Tokenize splits text into sentences and word tokens
func (a *AnnotatorService) Tokenize(text string) (*models.TokenizeResponse, error) {
	text, err := ValidateText(text)
	if err != nil {
		return nil, err
	}

	doc, err := a.newDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	sentences := make([]string, 0, len(doc.Sentences()))
	for _, sent := range doc.Sentences() {
		sentences = append(sentences, sent.Text)
	}

	return &models.TokenizeResponse{
		Sentences: sentences,
		Tokens:    tokenTexts(doc.Tokens()),
	}, nil
}

// Stem tokenizes text and stems every token with the Russian snowball stemmer
func (a *AnnotatorService) Stem(text string) (*models.StemResponse, error) {
	tokens, err := a.tokens(text)
	if err != nil {
		return nil, err
	}

	stems := make([]string, len(tokens))
	for i, token := range tokens {
		stem, err := snowball.Stem(token, "russian", true)
		if err != nil {
			return nil, fmt.Errorf("failed to stem %q: %w", token, err)
		}
		stems[i] = stem
	}

	return &models.StemResponse{Tokens: tokens, Stems: stems}, nil
}

// Lemmatize tokenizes text and asks the morphology backend for lemmas
func (a *AnnotatorService) Lemmatize(ctx context.Context, text string) (*models.LemmatizeResponse, error) {
	tokens, err := a.tokens(text)
	if err != nil {
		return nil, err
	}
	if a.lemmatizer == nil {
		return nil, ErrMorphBackendUnavailable
	}

	lemmas, err := a.lemmatizer.Lemmatize(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to lemmatize %d tokens: %w", len(tokens), err)
	}

	return &models.LemmatizeResponse{Tokens: tokens, Lemmas: lemmas}, nil
}

// POS tags every token with its part of speech
func (a *AnnotatorService) POS(text string) (*models.POSResponse, error) {
	text, err := ValidateText(text)
	if err != nil {
		return nil, err
	}

	doc, err := a.newDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	toks := doc.Tokens()
	tagged := make([]models.TaggedToken, len(toks))
	for i, tok := range toks {
		tagged[i] = models.TaggedToken{tok.Text, tok.Tag}
	}

	return &models.POSResponse{Tokens: tokenTexts(toks), POS: tagged}, nil
}

// Entities extracts named entities
func (a *AnnotatorService) Entities(text string) (*models.NERResponse, error) {
	text, err := ValidateText(text)
	if err != nil {
		return nil, err
	}

	doc, err := a.newDocument(text)
	if err != nil {
		return nil, err
	}

	entities := make([]models.Entity, 0, len(doc.Entities()))
	for _, ent := range doc.Entities() {
		entities = append(entities, models.Entity{Text: ent.Text, Type: ent.Label})
	}

	return &models.NERResponse{Entities: entities}, nil
}

func (a *AnnotatorService) tokens(text string) ([]string, error) {
	text, err := ValidateText(text)
	if err != nil {
		return nil, err
	}

	doc, err := a.newDocument(text, prose.WithSegmentation(false), prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	return tokenTexts(doc.Tokens()), nil
}

func (a *AnnotatorService) newDocument(text string, opts ...prose.DocOpt) (*prose.Document, error) {
	model, err := a.loadModel()
	if err != nil {
		return nil, err
	}
	if model != nil {
		opts = append(opts, prose.UsingModel(model))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}
	return doc, nil
}

// loadModel reads the custom model on first use
func (a *AnnotatorService) loadModel() (*prose.Model, error) {
	a.modelOnce.Do(func() {
		if a.modelDir == "" {
			return
		}
		if _, err := os.Stat(a.modelDir); err != nil {
			a.modelErr = fmt.Errorf("prose model directory unavailable: %w", err)
			a.logger.WithError(a.modelErr).Error("Failed to load NLP model")
			return
		}
		a.model = prose.ModelFromDisk(a.modelDir)
		a.logger.WithField("model", a.model.Name).Info("NLP model loaded")
	})
	return a.model, a.modelErr
}

func tokenTexts(toks []prose.Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}

