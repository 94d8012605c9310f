package models

// TextRequest is the payload of the linguistic annotation endpoints
type TextRequest struct {
	Text string `json:"text"` // Input text
}

// TokenizeResponse holds sentence and word segmentation of a text
type TokenizeResponse struct {
	Sentences []string `json:"sentences"`
	Tokens    []string `json:"tokens"`
}

// StemResponse pairs tokens with their stems
type StemResponse struct {
	Tokens []string `json:"tokens"`
	Stems  []string `json:"stems"`
}

// LemmatizeResponse pairs tokens with their dictionary forms
type LemmatizeResponse struct {
	Tokens []string `json:"tokens"`
	Lemmas []string `json:"lemmas"`
}

// TaggedToken is a [token, tag] pair
type TaggedToken [2]string

// POSResponse pairs tokens with part-of-speech tags
type POSResponse struct {
	Tokens []string      `json:"tokens"`
	POS    []TaggedToken `json:"pos"`
}

// Entity is a named entity span
type Entity struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// NERResponse lists the named entities of a text
type NERResponse struct {
	Entities []Entity `json:"entities"`
}
