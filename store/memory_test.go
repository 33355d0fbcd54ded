package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wavescope/wavescope/model"
)

func TestMemoryStore_NoData(t *testing.T) {
	m := NewMemoryStore()

	_, err := m.Scalars("a/x")
	require.ErrorIs(t, err, ErrNoData)

	_, err = m.Classes("a/x", KindState)
	require.ErrorIs(t, err, ErrNoData)

	entities, err := m.Entities()
	require.NoError(t, err)
	require.Empty(t, entities)
}

func TestMemoryStore_ScalarsAscendingAndBagged(t *testing.T) {
	m := NewMemoryStore()
	m.LogScalar("a/x", 100, 2.0)
	m.LogScalar("a/x", 0, 1.0)
	m.LogScalar("a/x", 50, 1.5)
	m.LogScalar("a/x", 50, 9.9) // same instant, grows the bag

	s, err := m.Scalars("a/x")
	require.NoError(t, err)
	require.Len(t, s, 3)
	require.Equal(t, model.Time(0), s[0].Time)
	require.Equal(t, model.Time(50), s[1].Time)
	require.Equal(t, model.Time(100), s[2].Time)
	require.Equal(t, []float64{1.5, 9.9}, s[1].Values)
}

func TestMemoryStore_ClassKindsAreIndependent(t *testing.T) {
	m := NewMemoryStore()
	m.LogState("d/s", 0, 0)
	m.LogState("d/s", 50, 1)
	m.LogStateInit("d/s", 0)
	m.LogStateNormal("d/s", 0)
	m.LogEvent("d/s", 25, 3)

	states, err := m.Classes("d/s", KindState)
	require.NoError(t, err)
	require.Len(t, states, 2)

	norm, err := m.Classes("d/s", KindStateNormal)
	require.NoError(t, err)
	require.Len(t, norm, 1)
	require.Equal(t, []model.ClassID{0}, norm[0].Classes)

	evs, err := m.Classes("d/s", KindEvent)
	require.NoError(t, err)
	require.Equal(t, model.Time(25), evs[0].Time)

	_, err = m.Classes("d/s", KindAnalog)
	require.ErrorIs(t, err, ErrNoData)
}

func TestMemoryStore_EntitiesSorted(t *testing.T) {
	m := NewMemoryStore()
	m.LogScalar("b/y", 0, 1)
	m.LogState("a/x", 0, 0)

	entities, err := m.Entities()
	require.NoError(t, err)
	require.Equal(t, []model.EntityPath{"a/x", "b/y"}, entities)
}
