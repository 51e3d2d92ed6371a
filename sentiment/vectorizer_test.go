package sentiment

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVectorizer(t *testing.T, v TfidfVectorizer) *TfidfVectorizer {
	t.Helper()
	require.NoError(t, v.init())
	return &v
}

func writeJSON(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestTransform_L2Normalized(t *testing.T) {
	v := newVectorizer(t, TfidfVectorizer{
		Vocabulary: map[string]int{"great": 0, "bad": 1, "movie": 2},
		IDF:        []float64{1.0, 2.0, 1.5},
		Lowercase:  true,
		Norm:       "l2",
	})

	x := v.Transform("Great, GREAT movie!")

	require.Len(t, x, 2)
	assert.InDelta(t, 0.8, x[0], 1e-9)
	assert.InDelta(t, 0.6, x[2], 1e-9)
	assert.Zero(t, x[1])
}

func TestTransform_UnknownAndShortTokens(t *testing.T) {
	v := newVectorizer(t, TfidfVectorizer{
		Vocabulary: map[string]int{"great": 0},
		IDF:        []float64{1},
		Lowercase:  true,
		Norm:       "l2",
	})

	assert.Empty(t, v.Transform("a b c completely unrelated words"))
	assert.Equal(t, SparseVector{0: 1}, v.Transform("I a great"))
}

func TestTransform_CaseSensitiveWithoutLowercase(t *testing.T) {
	v := newVectorizer(t, TfidfVectorizer{
		Vocabulary: map[string]int{"great": 0},
		IDF:        []float64{1},
	})

	assert.Empty(t, v.Transform("GREAT"))
	assert.Equal(t, SparseVector{0: 1}, v.Transform("great"))
}

func TestTransform_StopWordsAndNgrams(t *testing.T) {
	v := newVectorizer(t, TfidfVectorizer{
		Vocabulary: map[string]int{"not": 0, "good": 1, "not good": 2, "the": 3},
		IDF:        []float64{1, 1, 1, 1},
		Lowercase:  true,
		NgramRange: [2]int{1, 2},
		StopWords:  []string{"the"},
	})

	x := v.Transform("Not the good")

	// "the" is dropped before n-grams are built, so "not good" is adjacent.
	assert.Equal(t, SparseVector{0: 1, 1: 1, 2: 1}, x)
}

func TestTransform_SublinearTF(t *testing.T) {
	v := newVectorizer(t, TfidfVectorizer{
		Vocabulary:  map[string]int{"boring": 0},
		IDF:         []float64{2},
		SublinearTF: true,
	})

	x := v.Transform("boring boring boring")
	assert.InDelta(t, 2*(1+math.Log(3)), x[0], 1e-9)
}

func TestTransform_L1Norm(t *testing.T) {
	v := newVectorizer(t, TfidfVectorizer{
		Vocabulary: map[string]int{"good": 0, "plot": 1},
		IDF:        []float64{1, 1},
		Norm:       "l1",
	})

	x := v.Transform("good good good plot")
	assert.InDelta(t, 0.75, x[0], 1e-9)
	assert.InDelta(t, 0.25, x[1], 1e-9)
}

func TestTransform_StripAccents(t *testing.T) {
	vocab := map[string]int{"cafe": 0, "naive": 1}

	unicodeV := newVectorizer(t, TfidfVectorizer{Vocabulary: vocab, IDF: []float64{1, 1}, Lowercase: true, StripAccents: "unicode"})
	assert.Equal(t, SparseVector{0: 1, 1: 1}, unicodeV.Transform("Café naïve"))

	asciiV := newVectorizer(t, TfidfVectorizer{Vocabulary: vocab, IDF: []float64{1, 1}, Lowercase: true, StripAccents: "ascii"})
	assert.Equal(t, SparseVector{0: 1, 1: 1}, asciiV.Transform("CAFÉ NAÏVE"))

	plain := newVectorizer(t, TfidfVectorizer{Vocabulary: vocab, IDF: []float64{1, 1}, Lowercase: true})
	assert.Empty(t, plain.Transform("café naïve"))
}

func TestLoadVectorizer(t *testing.T) {
	dir := t.TempDir()

	path := writeJSON(t, dir, "ok.json", map[string]interface{}{
		"type":       "tfidf",
		"vocabulary": map[string]int{"great": 0, "bad": 1},
		"idf":        []float64{1.1, 1.3},
		"lowercase":  true,
		"norm":       "l2",
	})
	v, err := LoadVectorizer(path)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, [2]int{1, 1}, v.NgramRange)

	_, err = LoadVectorizer(writeJSON(t, dir, "mismatch.json", map[string]interface{}{
		"vocabulary": map[string]int{"great": 0, "bad": 1},
		"idf":        []float64{1.1},
	}))
	assert.ErrorIs(t, err, ErrIncompatibleModel)

	_, err = LoadVectorizer(writeJSON(t, dir, "count.json", map[string]interface{}{
		"type":       "count",
		"vocabulary": map[string]int{"great": 0},
		"idf":        []float64{1},
	}))
	assert.ErrorIs(t, err, ErrUnknownModelType)

	_, err = LoadVectorizer(writeJSON(t, dir, "norm.json", map[string]interface{}{
		"vocabulary": map[string]int{"great": 0},
		"idf":        []float64{1},
		"norm":       "max",
	}))
	assert.ErrorIs(t, err, ErrIncompatibleModel)

	_, err = LoadVectorizer(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadVectorizer_Defaults(t *testing.T) {
	dir := t.TempDir()

	v, err := LoadVectorizer(writeJSON(t, dir, "bare.json", map[string]interface{}{
		"vocabulary": map[string]int{"great": 0, "bad": 1},
		"idf":        []float64{1, 1},
	}))
	require.NoError(t, err)
	assert.True(t, v.Lowercase)
	assert.Equal(t, "l2", v.Norm)
	vec := v.Transform("GREAT Bad")
	assert.InDelta(t, 1/math.Sqrt2, vec[0], 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, vec[1], 1e-9)

	v, err = LoadVectorizer(writeJSON(t, dir, "explicit.json", map[string]interface{}{
		"vocabulary": map[string]int{"great": 0, "bad": 1},
		"idf":        []float64{1, 1},
		"lowercase":  false,
		"norm":       nil,
	}))
	require.NoError(t, err)
	assert.False(t, v.Lowercase)
	assert.Empty(t, v.Norm)
	assert.Equal(t, SparseVector{1: 1}, v.Transform("GREAT bad"))
}
