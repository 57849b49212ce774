// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"testing"

	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factory(id, name string) models.Factory {
	return models.Factory{ID: id, Name: name, Item: "iron-plate", Rate: 30}
}

func snapshot(name string, factories ...models.Factory) models.Snapshot {
	s := models.Snapshot{
		Game:      models.SnapshotGame{Name: name, FactoryIDs: []string{}},
		Factories: map[string]models.Factory{},
		Solvers:   map[string]models.Solver{},
	}
	for _, f := range factories {
		s.Game.FactoryIDs = append(s.Game.FactoryIDs, f.ID)
		s.Factories[f.ID] = f
	}
	return s
}

func encode(t *testing.T, s models.Snapshot) string {
	t.Helper()
	payload, err := models.EncodeSnapshot(s)
	require.NoError(t, err)
	return string(payload)
}

// ── Merge ────────────────────────────────────────────────────────────────────

func TestMerge_UnionWithRemotePriority(t *testing.T) {
	a := factory("A", "smelting")
	b := factory("B", "local gears")
	bRemote := factory("B", "remote gears")
	c := factory("C", "circuits")

	local := snapshot("local name", a, b)
	remote := snapshot("remote name", bRemote, c)

	merged := Merge(local, remote)

	assert.ElementsMatch(t, []string{"A", "B", "C"}, merged.Game.FactoryIDs)
	assert.Len(t, merged.Factories, 3)
	assert.Equal(t, a, merged.Factories["A"], "local-only factory preserved unchanged")
	assert.Equal(t, bRemote, merged.Factories["B"], "shared id takes the remote content")
	assert.Equal(t, c, merged.Factories["C"])
	assert.Equal(t, "remote name", merged.Game.Name)
}

func TestMerge_OrderIsRemoteThenLocalOnly(t *testing.T) {
	local := snapshot("g", factory("X", ""), factory("B", ""), factory("Y", ""))
	remote := snapshot("g", factory("C", ""), factory("B", ""))

	merged := Merge(local, remote)

	assert.Equal(t, []string{"C", "B", "X", "Y"}, merged.Game.FactoryIDs)
}

func TestMerge_Idempotent(t *testing.T) {
	x := snapshot("factory floor", factory("A", "a"), factory("B", "b"))
	x.Solvers["A"] = models.Solver{ID: "A", TargetItem: "iron-plate", TargetRate: 60, Recipes: []string{"smelt"}}

	merged := Merge(x, x)

	assert.Equal(t, x, merged)
	assert.Equal(t, encode(t, x), encode(t, merged))
}

func TestMerge_EmptyLocal(t *testing.T) {
	remote := snapshot("r", factory("A", "a"))

	merged := Merge(snapshot("l"), remote)

	assert.Equal(t, remote, merged)
}

func TestMerge_EmptyRemoteKeepsLocalChildren(t *testing.T) {
	local := snapshot("l", factory("A", "a"), factory("B", "b"))

	merged := Merge(local, snapshot("r"))

	assert.Equal(t, []string{"A", "B"}, merged.Game.FactoryIDs)
	assert.Equal(t, "r", merged.Game.Name)
}

func TestMerge_Solvers(t *testing.T) {
	local := snapshot("g", factory("A", ""), factory("B", ""))
	local.Solvers["A"] = models.Solver{ID: "A", TargetItem: "local-a"}
	local.Solvers["B"] = models.Solver{ID: "B", TargetItem: "local-b"}

	remote := snapshot("g", factory("B", ""), factory("C", ""))
	remote.Solvers["C"] = models.Solver{ID: "C", TargetItem: "remote-c"}

	merged := Merge(local, remote)

	assert.Equal(t, "local-a", merged.Solvers["A"].TargetItem, "local-only solver kept")
	_, hasB := merged.Solvers["B"]
	assert.False(t, hasB, "remote absence wins for a shared id")
	assert.Equal(t, "remote-c", merged.Solvers["C"].TargetItem)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	local := snapshot("l", factory("A", "a"))
	local.Solvers["A"] = models.Solver{ID: "A", Machines: map[string]float64{"furnace": 2}}
	remote := snapshot("r", factory("B", "b"))

	localBefore := encode(t, local)
	remoteBefore := encode(t, remote)

	merged := Merge(local, remote)
	merged.Game.FactoryIDs[0] = "mutated"
	merged.Solvers["A"].Machines["furnace"] = 99

	assert.Equal(t, localBefore, encode(t, local))
	assert.Equal(t, remoteBefore, encode(t, remote))
}

func TestMerge_Deterministic(t *testing.T) {
	local := snapshot("l", factory("A", "a"), factory("D", "d"))
	remote := snapshot("r", factory("B", "b"), factory("C", "c"))

	first := encode(t, Merge(local, remote))
	for range 20 {
		assert.Equal(t, first, encode(t, Merge(local, remote)))
	}
}

// ── LocalOnlyIDs / HasLocalChanges ──────────────────────────────────────────

func TestLocalOnlyIDs(t *testing.T) {
	local := snapshot("l", factory("A", ""), factory("B", ""), factory("C", ""))
	remote := snapshot("r", factory("B", ""))

	assert.Equal(t, []string{"A", "C"}, LocalOnlyIDs(local, remote))
	assert.Empty(t, LocalOnlyIDs(remote, remote))
}

func TestHasLocalChanges(t *testing.T) {
	tests := []struct {
		name   string
		local  models.Snapshot
		remote models.Snapshot
		want   bool
	}{
		{
			name:   "identical",
			local:  snapshot("g", factory("A", "")),
			remote: snapshot("g", factory("A", "")),
			want:   false,
		},
		{
			name:   "local-only factory",
			local:  snapshot("g", factory("A", ""), factory("B", "")),
			remote: snapshot("g", factory("A", ""), factory("C", "")),
			want:   true,
		},
		{
			name:   "remote has more factories",
			local:  snapshot("g", factory("A", "")),
			remote: snapshot("g", factory("A", ""), factory("B", "")),
			want:   true,
		},
		{
			name:   "shared factory edited only",
			local:  snapshot("g", factory("A", "local")),
			remote: snapshot("g", factory("A", "remote")),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLocalChanges(tt.local, tt.remote))
		})
	}
}
