package valuesdb

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/values"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "values.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func mixedStore(t *testing.T) *values.Values {
	t.Helper()
	v := values.New()
	require.NoError(t, v.Insert(key.NewSymbol('x', 0).Key(), geom.NewPose2(1, 2, 0.3)))
	require.NoError(t, v.Insert(key.NewSymbol('l', 0).Key(), geom.Point3{X: 4, Y: 5, Z: 6}))
	require.NoError(t, v.Insert(key.Key(7), geom.Point2{X: -1, Y: 0.5}))
	require.NoError(t, v.Insert(key.NewSymbol('c', 0).Key(), geom.Pose3{
		R: geom.RotExpmap([3]float64{0, 0, math.Pi / 4}),
		T: geom.Point3{X: 1, Y: 0, Z: 2},
	}))
	return v
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	v := mixedStore(t)

	id, err := db.SaveSnapshot("fixture", v)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := db.LoadSnapshot(id)
	require.NoError(t, err)
	require.Equal(t, v.Len(), loaded.Len())

	t.Run("keys preserved", func(t *testing.T) {
		assert.Equal(t, v.Keys(), loaded.Keys())
	})

	t.Run("pose2", func(t *testing.T) {
		got, err := values.At[geom.Pose2](loaded, key.NewSymbol('x', 0).Key())
		require.NoError(t, err)
		assert.Equal(t, geom.NewPose2(1, 2, 0.3), got)
	})

	t.Run("point3", func(t *testing.T) {
		got, err := values.At[geom.Point3](loaded, key.NewSymbol('l', 0).Key())
		require.NoError(t, err)
		assert.Equal(t, geom.Point3{X: 4, Y: 5, Z: 6}, got)
	})

	t.Run("point2", func(t *testing.T) {
		got, err := values.At[geom.Point2](loaded, key.Key(7))
		require.NoError(t, err)
		assert.Equal(t, geom.Point2{X: -1, Y: 0.5}, got)
	})

	t.Run("pose3", func(t *testing.T) {
		got, err := values.At[geom.Pose3](loaded, key.NewSymbol('c', 0).Key())
		require.NoError(t, err)
		want, err := values.At[geom.Pose3](v, key.NewSymbol('c', 0).Key())
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.InDelta(t, want.R.At(i, j), got.R.At(i, j), 1e-12)
			}
		}
		assert.Equal(t, want.T, got.T)
	})
}

func TestListSnapshots(t *testing.T) {
	db := openTestDB(t)
	v := mixedStore(t)

	first, err := db.SaveSnapshot("first", v)
	require.NoError(t, err)
	second, err := db.SaveSnapshot("second", v)
	require.NoError(t, err)

	infos, err := db.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// Newest first.
	assert.Equal(t, second, infos[0].UUID)
	assert.Equal(t, "second", infos[0].Label)
	assert.Equal(t, first, infos[1].UUID)
	assert.Equal(t, v.Len(), infos[0].Count)
}

func TestSaveSnapshotRejectsUnknownTypes(t *testing.T) {
	db := openTestDB(t)
	v := values.New()
	require.NoError(t, v.Insert(key.Key(1), "not a geometric value"))

	_, err := db.SaveSnapshot("bad", v)
	assert.Error(t, err)

	// The failed save must not leave a snapshot behind.
	infos, err := db.ListSnapshots()
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestLoadMissingSnapshot(t *testing.T) {
	db := openTestDB(t)
	_, err := db.LoadSnapshot("no-such-uuid")
	assert.Error(t, err)
}
