package analysis

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Summarize produces an extractive summary of up to numSentences sentences.
//
// Each sentence is scored by the cosine similarity of its TF-IDF vector
// against the lead sentence (a proxy for the key topic), the top scorers
// are selected, and the selection is re-sorted into document order so the
// summary reads naturally. Texts with numSentences or fewer sentences are
// returned whole.
func Summarize(text string, numSentences int) string {
	sentences := SplitSentences(text)
	if len(sentences) <= numSentences {
		return strings.Join(sentences, " ")
	}

	vectors := tfidfVectors(sentences)

	scores := make([]float64, len(sentences))
	for i := range vectors {
		scores[i] = cosine(vectors[0], vectors[i])
	}

	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	top := append([]int(nil), ranked[:numSentences]...)
	sort.Ints(top)

	selected := make([]string, 0, numSentences)
	for _, idx := range top {
		selected = append(selected, sentences[idx])
	}

	return strings.Join(selected, " ")
}

// tfidfVectors computes a sparse TF-IDF vector per sentence over the shared
// vocabulary.
func tfidfVectors(sentences []string) []map[string]float64 {
	termCounts := make([]map[string]float64, len(sentences))
	documentFrequency := make(map[string]int)

	for i, sentence := range sentences {
		counts := make(map[string]float64)
		for _, term := range tokenize(sentence) {
			counts[term]++
		}
		for term := range counts {
			documentFrequency[term]++
		}
		termCounts[i] = counts
	}

	total := float64(len(sentences))
	vectors := make([]map[string]float64, len(sentences))
	for i, counts := range termCounts {
		vec := make(map[string]float64, len(counts))
		for term, tf := range counts {
			idf := math.Log(total/float64(documentFrequency[term])) + 1
			vec[term] = tf * idf
		}
		vectors[i] = vec
	}

	return vectors
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64

	for term, weight := range a {
		normA += weight * weight
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	for _, weight := range b {
		normB += weight * weight
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
