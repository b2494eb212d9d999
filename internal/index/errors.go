package index

import "errors"

// Sentinel errors returned by the vector index. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPersist wraps any failure to write the vector store or the
	// position→docid mapping to disk after an insert. The insert itself is
	// still committed in memory; the on-disk index may lag the document
	// store until the next successful persist. Callers log this and move on.
	ErrPersist = errors.New("index persistence failed")

	// ErrDimensionMismatch is returned when an inserted or queried vector
	// does not match the index dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrCorruptedArtifacts is returned at load time when the vector store
	// and the mapping disagree (different entry counts or a malformed
	// header), meaning one artifact was written without the other.
	ErrCorruptedArtifacts = errors.New("index artifacts are out of sync")
)
