package sentiment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SparseVector maps feature index to value. Absent indices are zero.
type SparseVector map[int]float64

// Vectorizer turns raw text into a feature vector.
type Vectorizer interface {
	Transform(text string) SparseVector
	Size() int
}

// tokenPattern matches runs of two or more word characters, the default
// token pattern of scikit-learn's text vectorizers.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TfidfVectorizer applies an exported, already fitted TF-IDF vocabulary.
type TfidfVectorizer struct {
	Type         string         `json:"type"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Lowercase    bool           `json:"lowercase"`
	NgramRange   [2]int         `json:"ngram_range"`
	StopWords    []string       `json:"stop_words"`
	StripAccents string         `json:"strip_accents"` // "", "unicode" or "ascii"
	SublinearTF  bool           `json:"sublinear_tf"`
	Norm         string         `json:"norm"` // "l2", "l1" or "" for none

	stop map[string]struct{}
}

// LoadVectorizer reads a TF-IDF vectorizer artifact from path.
func LoadVectorizer(path string) (*TfidfVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectorizer: %w", err)
	}
	// Omitted keys keep the TfidfVectorizer defaults.
	v := TfidfVectorizer{Lowercase: true, Norm: "l2"}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode vectorizer %s: %w", path, err)
	}
	// A null norm disables normalization, while Unmarshal leaves the default.
	var raw struct {
		Norm json.RawMessage `json:"norm"`
	}
	if err := json.Unmarshal(data, &raw); err == nil && string(raw.Norm) == "null" {
		v.Norm = ""
	}
	if err := v.init(); err != nil {
		return nil, fmt.Errorf("vectorizer %s: %w", path, err)
	}
	return &v, nil
}

func (v *TfidfVectorizer) init() error {
	if v.Type != "" && v.Type != "tfidf" {
		return fmt.Errorf("%w: vectorizer type %q", ErrUnknownModelType, v.Type)
	}
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("%w: empty vocabulary", ErrIncompatibleModel)
	}
	if len(v.IDF) != len(v.Vocabulary) {
		return fmt.Errorf("%w: %d idf weights for %d terms", ErrIncompatibleModel, len(v.IDF), len(v.Vocabulary))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("%w: term %q has index %d", ErrIncompatibleModel, term, idx)
		}
	}
	if v.NgramRange == [2]int{} {
		v.NgramRange = [2]int{1, 1}
	}
	if v.NgramRange[0] < 1 || v.NgramRange[1] < v.NgramRange[0] {
		return fmt.Errorf("%w: ngram_range %v", ErrIncompatibleModel, v.NgramRange)
	}
	switch v.StripAccents {
	case "", "unicode", "ascii":
	default:
		return fmt.Errorf("%w: strip_accents %q", ErrIncompatibleModel, v.StripAccents)
	}
	switch v.Norm {
	case "", "l1", "l2":
	default:
		return fmt.Errorf("%w: norm %q", ErrIncompatibleModel, v.Norm)
	}
	v.stop = make(map[string]struct{}, len(v.StopWords))
	for _, w := range v.StopWords {
		v.stop[w] = struct{}{}
	}
	return nil
}

func (v *TfidfVectorizer) Size() int {
	return len(v.IDF)
}

// Transform computes the TF-IDF vector of text over the fitted vocabulary.
// Terms outside the vocabulary are ignored.
func (v *TfidfVectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range v.analyze(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	for idx, tf := range counts {
		if v.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		counts[idx] = tf * v.IDF[idx]
	}

	normalize(counts, v.Norm)
	return SparseVector(counts)
}

// analyze runs preprocessing, tokenization, stop word removal and n-gram
// generation.
func (v *TfidfVectorizer) analyze(text string) []string {
	text = stripAccents(text, v.StripAccents)
	if v.Lowercase {
		text = strings.ToLower(text)
	}

	var tokens []string
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		if _, skip := v.stop[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}

	minN, maxN := v.NgramRange[0], v.NgramRange[1]
	if minN == 1 && maxN == 1 {
		return tokens
	}

	var terms []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func stripAccents(text, mode string) string {
	var t transform.Transformer
	switch mode {
	case "unicode":
		t = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	case "ascii":
		t = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
			return r > unicode.MaxASCII
		})))
	default:
		return text
	}
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

func normalize(vec map[int]float64, kind string) {
	var total float64
	switch kind {
	case "l2":
		for _, x := range vec {
			total += x * x
		}
		total = math.Sqrt(total)
	case "l1":
		for _, x := range vec {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for idx, x := range vec {
		vec[idx] = x / total
	}
}
