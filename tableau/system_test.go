// SPDX-License-Identifier: MIT
package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/tableau"
)

func TestSystem_FixedEqualityChain(t *testing.T) {
	sys := tableau.NewSystem()
	v1 := sys.CreateObjectVariable("v1")
	v2 := sys.CreateObjectVariable("v2")

	require.NoError(t, sys.AddEqualityConstant(v2, 0, lattice.Fixed))
	require.NoError(t, sys.AddEquality(v1, v2, 10, lattice.Fixed))

	outcome, err := sys.Minimize()
	require.NoError(t, err)
	require.Equal(t, tableau.Optimal, outcome)

	val, ok := sys.GetObjectVariableValue("v1")
	require.True(t, ok)
	require.Equal(t, 10, val)
}

func TestSystem_InequalityRespectsBound(t *testing.T) {
	sys := tableau.NewSystem()
	width := sys.CreateObjectVariable("width")

	require.NoError(t, sys.AddEqualityConstant(width, 0, lattice.None))
	require.NoError(t, sys.AddGreaterThan(width, sys.CreateObjectVariable("zero"), 50, lattice.Fixed))
	require.NoError(t, sys.AddEqualityConstant(sys.CreateObjectVariable("zero"), 0, lattice.Fixed))

	outcome, err := sys.Minimize()
	require.NoError(t, err)
	require.Equal(t, tableau.Optimal, outcome)

	val, _ := sys.GetObjectVariableValue("width")
	require.GreaterOrEqual(t, val, 50)
}

func TestSystem_ConflictingWeakConstraintsDegradeGracefully(t *testing.T) {
	sys := tableau.NewSystem()
	v := sys.CreateObjectVariable("v")

	require.NoError(t, sys.AddEqualityConstant(v, 10, lattice.Medium))
	require.NoError(t, sys.AddEqualityConstant(v, 20, lattice.High))

	outcome, err := sys.Minimize()
	require.NoError(t, err)
	require.Equal(t, tableau.Optimal, outcome)

	val, _ := sys.GetObjectVariableValue("v")
	require.Equal(t, 20, val) // higher strength wins
}

func TestSystem_ResetRewindsState(t *testing.T) {
	sys := tableau.NewSystem()
	v := sys.CreateObjectVariable("v")
	require.NoError(t, sys.AddEqualityConstant(v, 5, lattice.Fixed))
	_, err := sys.Minimize()
	require.NoError(t, err)

	sys.Reset()
	_, ok := sys.GetObjectVariableValue("v")
	require.False(t, ok)
}
