// Package embedding turns document and query text into fixed-length numeric
// vectors for the search index. Two providers exist: a dependency-free
// deterministic hashing embedder (the default) and a client for a remote
// embeddings HTTP service. The numerical quality of the embedding is an
// externally supplied signal; the index and the orchestrator only rely on
// the vectors having the configured fixed length.
package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// Embedder produces a fixed-length embedding vector for a piece of text.
type Embedder interface {
	// Embed returns a vector of exactly Dim() elements.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dim returns the fixed dimensionality of produced vectors.
	Dim() int
}

// HashingEmbedder is a deterministic bag-of-words feature-hashing embedder:
// each token is hashed into one of dim buckets and the resulting term
// frequency vector is L2-normalized. Identical text always yields the
// identical vector, and texts sharing vocabulary land close in L2 distance,
// which is all the index contract requires.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder constructs a [HashingEmbedder] with the given
// dimensionality.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	return &HashingEmbedder{dim: dim}
}

// Embed implements [Embedder]. It never fails; text with no tokens yields
// the zero vector.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)

	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[int(h.Sum32())%e.dim]++
	}

	normalize(vec)
	return vec, nil
}

// Dim implements [Embedder].
func (e *HashingEmbedder) Dim() int {
	return e.dim
}

// tokenize lower-cases text and splits it on every non-letter, non-digit
// rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}

	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
