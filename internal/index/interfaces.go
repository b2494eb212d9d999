// Package index implements the append-only vector index backing semantic
// search. Embeddings are held in memory for exact L2 scanning and persisted
// to a pair of companion artifacts on disk: a binary vector store and a
// position→docid mapping. The two artifacts are always written together
// after a successful insert and always loaded together at startup, so one
// can never be newer than the other across process restarts.
package index

// Hit is a single nearest-neighbour result: the dense insertion position,
// the document id recorded for that position, and the squared L2 distance
// between the query and the stored vector.
type Hit struct {
	Position int
	DocID    int64
	Distance float64
}

// VectorIndex is the append-only embedding store.
//
// Positions are dense and append-only: there are no deletions or updates,
// so position i always refers to the i-th inserted vector. Insert calls are
// serialized under a single-writer discipline; searches may proceed
// concurrently with a bounded staleness tolerance (a search started just
// before a concurrent insert completes may miss that one new entry).
type VectorIndex interface {
	// Insert appends vector, records position→docID, then persists both
	// on-disk artifacts. A persistence failure is returned wrapped in
	// [ErrPersist]; the in-memory append remains committed and callers are
	// expected to treat the error as a non-fatal warning.
	Insert(docID int64, vector []float32) error

	// Search returns up to min(k, Len()) hits ordered by ascending distance.
	// Searching an empty index returns an empty slice and no error.
	Search(query []float32, k int) ([]Hit, error)

	// Len returns the number of indexed vectors.
	Len() int

	// MappingLen returns the number of position→docid mapping entries. It
	// always equals Len for a healthy index; the two are reported separately
	// so artifact drift is observable instead of silently masked.
	MappingLen() int

	// Dim returns the fixed embedding dimensionality of the index.
	Dim() int
}
