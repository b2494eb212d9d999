// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package index

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// vectorFileMagic identifies the binary vector store format.
const vectorFileMagic = uint32(0x44565849) // "DVXI"

// flatIndex is the private implementation of [VectorIndex]: an exact
// (non-approximate) flat L2 index, mirroring FAISS IndexFlatL2 semantics —
// distances are squared Euclidean and non-negative.
type flatIndex struct {
	mu sync.RWMutex

	dim     int
	vectors [][]float32
	docIDs  []int64

	vectorsPath string
	mappingPath string

	logger *logger.Logger
}

// Load constructs a [VectorIndex] from the configured on-disk artifacts.
//
// If both the vector store and the mapping file exist they are loaded
// together; if either is missing the index starts empty and both artifacts
// are created on the first insert. Artifacts that disagree with each other
// or with the configured dimension fail the load with
// [ErrCorruptedArtifacts] or [ErrDimensionMismatch] — starting with a
// silently desynchronized index is worse than failing startup.
func Load(cfg config.Index, log *logger.Logger) (VectorIndex, error) {
	idx := &flatIndex{
		dim:         cfg.Dimension,
		vectorsPath: cfg.VectorsPath,
		mappingPath: cfg.MappingPath,
		logger:      log,
	}

	_, vecErr := os.Stat(cfg.VectorsPath)
	_, mapErr := os.Stat(cfg.MappingPath)

	if os.IsNotExist(vecErr) || os.IsNotExist(mapErr) {
		log.Info().
			Str("vectors", cfg.VectorsPath).
			Str("mapping", cfg.MappingPath).
			Msg("index artifacts not found, starting with an empty index")
		return idx, nil
	}
	if vecErr != nil {
		return nil, fmt.Errorf("stat vector store: %w", vecErr)
	}
	if mapErr != nil {
		return nil, fmt.Errorf("stat mapping file: %w", mapErr)
	}

	if err := idx.loadArtifacts(); err != nil {
		return nil, err
	}

	log.Info().
		Int("vectors", len(idx.vectors)).
		Int("dim", idx.dim).
		Msg("index loaded from disk")

	return idx, nil
}

// Insert implements [VectorIndex]. The whole append+persist sequence runs
// under the write lock so concurrent inserts cannot interleave and
// desynchronize the two artifacts.
func (f *flatIndex) Insert(docID int64, vector []float32) error {
	if len(vector) != f.dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vector), f.dim)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]float32, f.dim)
	copy(stored, vector)
	f.vectors = append(f.vectors, stored)
	f.docIDs = append(f.docIDs, docID)

	if err := f.persistLocked(); err != nil {
		// The in-memory entry stays committed; the on-disk index lags until
		// the next successful persist. An accepted eventual-consistency gap.
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	return nil
}

// Search implements [VectorIndex].
func (f *flatIndex) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(query), f.dim)
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	total := len(f.vectors)
	if total == 0 || k <= 0 {
		return []Hit{}, nil
	}
	if k > total {
		k = total
	}

	hits := make([]Hit, total)
	for i, vec := range f.vectors {
		hits[i] = Hit{
			Position: i,
			DocID:    f.docIDs[i],
			Distance: squaredL2(query, vec),
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	return hits[:k], nil
}

// Len implements [VectorIndex].
func (f *flatIndex) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.vectors)
}

// MappingLen implements [VectorIndex].
func (f *flatIndex) MappingLen() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.docIDs)
}

// Dim implements [VectorIndex].
func (f *flatIndex) Dim() int {
	return f.dim
}

// Similarity converts a raw index distance into a presentation ranking
// score: 1/(1+distance), strictly decreasing in distance. The score is used
// only for ordering search responses and is never stored.
func Similarity(distance float64) float64 {
	return 1.0 / (1.0 + distance)
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// persistLocked writes both artifacts. Caller must hold the write lock.
// Each file is written to a temp sibling and renamed into place so a crash
// mid-write never leaves a half-written artifact behind.
func (f *flatIndex) persistLocked() error {
	if err := f.writeVectors(); err != nil {
		return fmt.Errorf("write vector store: %w", err)
	}
	if err := f.writeMapping(); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	return nil
}

func (f *flatIndex) writeVectors() error {
	tmp := f.vectorsPath + ".tmp"

	file, err := os.Create(tmp)
	if err != nil {
		return err
	}

	header := []uint32{vectorFileMagic, uint32(f.dim), uint32(len(f.vectors))}
	if err := binary.Write(file, binary.LittleEndian, header); err != nil {
		file.Close()
		return err
	}
	for _, vec := range f.vectors {
		if err := binary.Write(file, binary.LittleEndian, vec); err != nil {
			file.Close()
			return err
		}
	}
	if err := file.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, f.vectorsPath)
}

func (f *flatIndex) writeMapping() error {
	tmp := f.mappingPath + ".tmp"

	data, err := json.Marshal(f.docIDs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, f.mappingPath)
}

func (f *flatIndex) loadArtifacts() error {
	file, err := os.Open(f.vectorsPath)
	if err != nil {
		return fmt.Errorf("open vector store: %w", err)
	}
	defer file.Close()

	var header [3]uint32
	if err := binary.Read(file, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("%w: unreadable vector store header", ErrCorruptedArtifacts)
	}
	if header[0] != vectorFileMagic {
		return fmt.Errorf("%w: bad vector store magic", ErrCorruptedArtifacts)
	}
	if int(header[1]) != f.dim {
		return fmt.Errorf("%w: stored dim %d, configured %d", ErrDimensionMismatch, header[1], f.dim)
	}

	count := int(header[2])
	vectors := make([][]float32, 0, count)
	for i := 0; i < count; i++ {
		vec := make([]float32, f.dim)
		if err := binary.Read(file, binary.LittleEndian, &vec); err != nil {
			return fmt.Errorf("%w: vector store truncated at entry %d", ErrCorruptedArtifacts, i)
		}
		vectors = append(vectors, vec)
	}

	mappingData, err := os.ReadFile(f.mappingPath)
	if err != nil {
		return fmt.Errorf("read mapping: %w", err)
	}
	var docIDs []int64
	if err := json.Unmarshal(mappingData, &docIDs); err != nil {
		return fmt.Errorf("%w: malformed mapping file", ErrCorruptedArtifacts)
	}

	if len(docIDs) != len(vectors) {
		return fmt.Errorf("%w: %d vectors vs %d mapping entries",
			ErrCorruptedArtifacts, len(vectors), len(docIDs))
	}

	f.vectors = vectors
	f.docIDs = docIDs
	return nil
}
