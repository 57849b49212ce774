package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_EncodeDecode(t *testing.T) {
	s := Snapshot{
		Game: SnapshotGame{Name: "oil", FactoryIDs: []string{"b", "a"}},
		Factories: map[string]Factory{
			"a": {ID: "a", Name: "plastic", Item: "plastic-bar", Rate: 15},
			"b": {ID: "b", Name: "refinery", Item: "petroleum-gas", Rate: 120, Hidden: true},
		},
		Solvers: map[string]Solver{
			"a": {ID: "a", TargetItem: "plastic-bar", TargetRate: 15, Machines: map[string]float64{"chemical-plant": 3}},
		},
	}

	payload, err := EncodeSnapshot(s)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(payload)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestEncodeSnapshot_StableBytes(t *testing.T) {
	build := func() Snapshot {
		s := Snapshot{
			Game:      SnapshotGame{Name: "g", FactoryIDs: []string{}},
			Factories: map[string]Factory{},
			Solvers:   map[string]Solver{},
		}
		for _, id := range []string{"z", "m", "a", "q"} {
			s.Game.FactoryIDs = append(s.Game.FactoryIDs, id)
			s.Factories[id] = Factory{ID: id}
		}
		return s
	}

	first, err := EncodeSnapshot(build())
	require.NoError(t, err)
	for range 10 {
		next, err := EncodeSnapshot(build())
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestDecodeSnapshot_NormalizesMissingFields(t *testing.T) {
	s, err := DecodeSnapshot([]byte(`{"game":{"name":"bare"}}`))
	require.NoError(t, err)

	assert.Equal(t, "bare", s.Game.Name)
	assert.NotNil(t, s.Game.FactoryIDs)
	assert.NotNil(t, s.Factories)
	assert.NotNil(t, s.Solvers)
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{not json`))
	assert.Error(t, err)
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	s := Snapshot{
		Game:      SnapshotGame{Name: "g", FactoryIDs: []string{"a"}},
		Factories: map[string]Factory{"a": {ID: "a"}},
		Solvers:   map[string]Solver{"a": {ID: "a", Recipes: []string{"r"}, Machines: map[string]float64{"m": 1}}},
	}

	c := s.Clone()
	c.Game.FactoryIDs[0] = "x"
	c.Factories["b"] = Factory{ID: "b"}
	c.Solvers["a"].Machines["m"] = 7
	c.Solvers["a"].Recipes[0] = "changed"

	assert.Equal(t, "a", s.Game.FactoryIDs[0])
	assert.Len(t, s.Factories, 1)
	assert.Equal(t, 1.0, s.Solvers["a"].Machines["m"])
	assert.Equal(t, "r", s.Solvers["a"].Recipes[0])
}

func TestSession_Expiry(t *testing.T) {
	_, ok := Session{}.Expiry()
	assert.False(t, ok)

	exp, ok := Session{ExpiresAt: 1_700_000_000}.Expiry()
	assert.True(t, ok)
	assert.Equal(t, int64(1_700_000_000), exp.Unix())
}
