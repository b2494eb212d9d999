package index

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

func testConfig(t *testing.T, dim int) config.Index {
	t.Helper()
	dir := t.TempDir()
	return config.Index{
		VectorsPath: filepath.Join(dir, "vectors.bin"),
		MappingPath: filepath.Join(dir, "mapping.json"),
		Dimension:   dim,
	}
}

func TestLoad_EmptyWhenArtifactsMissing(t *testing.T) {
	idx, err := Load(testConfig(t, 4), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 4, idx.Dim())
}

func TestSearch_EmptyIndexReturnsEmpty(t *testing.T) {
	idx, err := Load(testConfig(t, 4), logger.Nop())
	require.NoError(t, err)

	hits, err := idx.Search([]float32{1, 0, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestInsertAndSearch_BoundsAndOrdering(t *testing.T) {
	idx, err := Load(testConfig(t, 2), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, idx.Insert(10, []float32{0, 0}))
	require.NoError(t, idx.Insert(20, []float32{1, 0}))
	require.NoError(t, idx.Insert(30, []float32{3, 0}))

	hits, err := idx.Search([]float32{0, 0}, 10)
	require.NoError(t, err)

	// at most min(k, total) hits
	require.Len(t, hits, 3)

	// ascending, non-negative distances
	prev := -1.0
	for _, hit := range hits {
		assert.GreaterOrEqual(t, hit.Distance, 0.0)
		assert.GreaterOrEqual(t, hit.Distance, prev)
		prev = hit.Distance
	}

	assert.Equal(t, int64(10), hits[0].DocID)
	assert.Equal(t, int64(20), hits[1].DocID)
	assert.Equal(t, int64(30), hits[2].DocID)

	top, err := idx.Search([]float32{0, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestInsert_DimensionMismatch(t *testing.T) {
	idx, err := Load(testConfig(t, 3), logger.Nop())
	require.NoError(t, err)

	err = idx.Insert(1, []float32{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, 0, idx.Len())
}

func TestInsert_PositionsAreDense(t *testing.T) {
	idx, err := Load(testConfig(t, 1), logger.Nop())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, idx.Insert(int64(100+i), []float32{float32(i)}))
	}

	hits, err := idx.Search([]float32{0}, 5)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, hit := range hits {
		seen[hit.Position] = true
	}
	for pos := 0; pos < 5; pos++ {
		assert.True(t, seen[pos], "position %d missing", pos)
	}
}

func TestMappingLen_TracksVectorCount(t *testing.T) {
	idx, err := Load(testConfig(t, 2), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, idx.MappingLen())

	require.NoError(t, idx.Insert(1, []float32{0, 1}))
	require.NoError(t, idx.Insert(2, []float32{1, 0}))

	assert.Equal(t, idx.Len(), idx.MappingLen())
	assert.Equal(t, 2, idx.MappingLen())
}

func TestLoad_ReloadsAfterRestart(t *testing.T) {
	cfg := testConfig(t, 2)

	idx, err := Load(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, idx.Insert(7, []float32{1, 1}))
	require.NoError(t, idx.Insert(8, []float32{5, 5}))

	// simulate process restart
	reloaded, err := Load(cfg, logger.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())

	hits, err := reloaded.Search([]float32{1, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(7), hits[0].DocID)
	assert.Equal(t, 0.0, hits[0].Distance)
}

func TestLoad_MismatchedArtifactsRejected(t *testing.T) {
	cfg := testConfig(t, 2)

	idx, err := Load(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, idx.Insert(1, []float32{1, 2}))

	// mapping claims more entries than the vector store holds
	require.NoError(t, writeMappingFile(cfg.MappingPath, []int64{1, 2, 3}))

	_, err = Load(cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrCorruptedArtifacts)
}

func TestInsert_PersistFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Index{
		// unwritable destination: a path under a file, not a directory
		VectorsPath: filepath.Join(dir, "missing", "vectors.bin"),
		MappingPath: filepath.Join(dir, "missing", "mapping.json"),
		Dimension:   2,
	}

	idx, err := Load(cfg, logger.Nop())
	require.NoError(t, err)

	err = idx.Insert(1, []float32{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersist))

	// the in-memory append stays committed and searchable
	assert.Equal(t, 1, idx.Len())
	hits, err := idx.Search([]float32{1, 2}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1), hits[0].DocID)
}

func TestSimilarity_StrictlyDecreasing(t *testing.T) {
	distances := []float64{0, 0.5, 1, 2, 10, 1000}
	prev := 2.0
	for _, d := range distances {
		s := Similarity(d)
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, prev)
		prev = s
	}
	assert.Equal(t, 1.0, Similarity(0))
}

func writeMappingFile(path string, docIDs []int64) error {
	f := &flatIndex{mappingPath: path, docIDs: docIDs}
	return f.writeMapping()
}
