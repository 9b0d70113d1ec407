package session

import (
	"os"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libplotter/curve"
	"github.com/sgostarter/libplotter/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func utStore(name string) *Store {
	return NewStore(name, rawfs.NewFSStorage(utRoot), nil)
}

func TestStoreEmpty(t *testing.T) {
	s := utStore("empty.json")

	_, ok := s.Domain()
	assert.False(t, ok)
	assert.Empty(t, s.Entries())

	c := curve.NewCollection(curve.NewDomain(-1, 1, -1, 1), nil, nil)
	c.AddCurve(curve.NewPointsCurve([]curve.Point{curve.Pt(0, 0)}))

	restored, err := s.Restore(c, nil, 10)
	require.Nil(t, err)
	assert.False(t, restored)
	assert.Equal(t, 1, c.Len())
}

func TestStorePutRemove(t *testing.T) {
	s := utStore("entries.json")

	id1, err := s.Put(fn.Spec{Kind: fn.KindPolynomial, Coefficients: []float64{1, 2}})
	require.Nil(t, err)

	id2, err := s.Put(fn.Spec{Kind: fn.KindExponential, Coefficient: 1, Base: 2})
	require.Nil(t, err)
	assert.NotEqual(t, id1, id2)

	_, err = s.Put(fn.Spec{Kind: "tangent"})
	assert.ErrorIs(t, err, fn.ErrUnknownKind)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, id1, entries[0].ID)
	assert.Equal(t, fn.KindExponential, entries[1].Spec.Kind)

	require.Nil(t, s.Remove(id1))
	assert.ErrorIs(t, s.Remove(id1), commerr.ErrNotFound)
	assert.Len(t, s.Entries(), 1)

	require.Nil(t, s.Clear())
	assert.Empty(t, s.Entries())
}

func TestStoreDomain(t *testing.T) {
	s := utStore("domain.json")

	assert.ErrorIs(t, s.SetDomain(curve.NewDomain(1, -1, 0, 1)), commerr.ErrInvalidArgument)

	require.Nil(t, s.SetDomain(curve.NewDomain(-5, 5, -2, 2)))

	domain, ok := s.Domain()
	require.True(t, ok)
	assert.Equal(t, curve.NewDomain(-5, 5, -2, 2), domain)
}

func TestStoreSnapshotRestore(t *testing.T) {
	domain := curve.NewDomain(-3, 3, -4, 4)

	src := curve.NewCollection(domain, nil, nil)

	poly := curve.NewCurve(fn.NewPolynomial(1, 0, -1))
	poly.Sample(domain, 6)
	src.AddCurve(poly)
	src.AddCurve(curve.NewPointsCurve([]curve.Point{curve.Pt(1, 1)}))

	sin := curve.NewCurve(fn.NewTrigonometric(fn.Cosine, 2, 1, 0))
	sin.Sample(domain, 6)
	src.AddCurve(sin)

	require.Nil(t, utStore("snapshot.json").Snapshot(src))

	// a second store on the same file sees the persisted state
	s := utStore("snapshot.json")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, fn.KindPolynomial, entries[0].Spec.Kind)
	assert.Equal(t, fn.KindTrigonometric, entries[1].Spec.Kind)

	dst := curve.NewCollection(curve.NewDomain(-10, 10, -10, 10), nil, nil)

	restored, err := s.Restore(dst, curve.NewCachedSampler(0), 6)
	require.Nil(t, err)
	assert.True(t, restored)
	assert.Equal(t, domain, *dst.Domain())

	curves := dst.Curves()
	require.Len(t, curves, 2)
	assert.Equal(t, poly.Points(), curves[0].Points())
	assert.Equal(t, sin.Points(), curves[1].Points())
}

func TestStoreRestoreSkipsBadEntries(t *testing.T) {
	require.Nil(t, os.WriteFile(utRoot+"/bad.json", []byte(`{
  "domain": {"x": {"min": 0, "max": 2}, "y": {"min": -1, "max": 1}},
  "entries": [
    {"id": 1, "spec": {"kind": "logarithmic", "a": 1, "base": 1}},
    {"id": 2, "spec": {"kind": "polynomial", "coefficients": [0, 1]}}
  ]
}`), 0o600))

	c := curve.NewCollection(curve.NewDomain(-1, 1, -1, 1), nil, nil)

	restored, err := utStore("bad.json").Restore(c, nil, 2)
	require.Nil(t, err)
	assert.True(t, restored)

	curves := c.Curves()
	require.Len(t, curves, 1)
	assert.Equal(t, []curve.Point{curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 2)}, curves[0].Points())
}
