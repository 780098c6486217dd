// SPDX-License-Identifier: MIT
package rows_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/rows"
)

func TestEqual_Shape(t *testing.T) {
	pool := lattice.NewPool()
	a := pool.Acquire(lattice.Unrestricted)
	b := pool.Acquire(lattice.Unrestricted)

	row := rows.Equal(pool, a, b, 10)
	ca, _ := row.Coeffs.Get(a)
	cb, _ := row.Coeffs.Get(b)
	require.Equal(t, 1.0, ca)
	require.Equal(t, -1.0, cb)
	require.Equal(t, -10.0, row.Constant)
}

func TestGreaterThanOrEqual_IncludesSlack(t *testing.T) {
	pool := lattice.NewPool()
	a := pool.Acquire(lattice.Unrestricted)
	b := pool.Acquire(lattice.Unrestricted)

	row, slack := rows.GreaterThanOrEqual(pool, a, b, 5)
	require.Equal(t, lattice.Slack, slack.Kind())
	cs, ok := row.Coeffs.Get(slack)
	require.True(t, ok)
	require.Equal(t, -1.0, cs)
}

func TestCentering_EvenBiasIsSymmetric(t *testing.T) {
	pool := lattice.NewPool()
	begin := pool.Acquire(lattice.Unrestricted)
	beginTarget := pool.Acquire(lattice.Unrestricted)
	endTarget := pool.Acquire(lattice.Unrestricted)
	end := pool.Acquire(lattice.Unrestricted)

	row := rows.Centering(pool, begin, beginTarget, 0, 0.5, endTarget, end, 0)
	wB, _ := row.Coeffs.Get(begin)
	wE, _ := row.Coeffs.Get(end)
	require.InDelta(t, wB, wE, 1e-9)
}

func TestPercent_Shape(t *testing.T) {
	pool := lattice.NewPool()
	a := pool.Acquire(lattice.Unrestricted)
	b := pool.Acquire(lattice.Unrestricted)
	c := pool.Acquire(lattice.Unrestricted)

	row := rows.Percent(pool, a, b, c, 0.25)
	cb, _ := row.Coeffs.Get(b)
	cc, _ := row.Coeffs.Get(c)
	require.Equal(t, -0.75, cb)
	require.Equal(t, -0.25, cc)
}

func TestAnglePair_Shape(t *testing.T) {
	pool := lattice.NewPool()
	aTop := pool.Acquire(lattice.Unrestricted)
	aBottom := pool.Acquire(lattice.Unrestricted)
	bTop := pool.Acquire(lattice.Unrestricted)
	bBottom := pool.Acquire(lattice.Unrestricted)

	row := rows.AnglePair(pool, aTop, aBottom, bTop, bBottom, 12.5)
	require.Equal(t, 12.5, row.Constant)
}

func TestRatio_Shape(t *testing.T) {
	pool := lattice.NewPool()
	a := pool.Acquire(lattice.Unrestricted)
	b := pool.Acquire(lattice.Unrestricted)
	c := pool.Acquire(lattice.Unrestricted)
	d := pool.Acquire(lattice.Unrestricted)

	row := rows.Ratio(pool, a, b, c, d, 2)
	cc, _ := row.Coeffs.Get(c)
	require.Equal(t, -2.0, cc)
}

func TestBarrier_OneRowPerMember(t *testing.T) {
	pool := lattice.NewPool()
	v := pool.Acquire(lattice.Unrestricted)
	m1 := pool.Acquire(lattice.Unrestricted)
	m2 := pool.Acquire(lattice.Unrestricted)

	built, slacks := rows.Barrier(pool, v, []*lattice.Variable{m1, m2}, true)
	require.Len(t, built, 2)
	require.Len(t, slacks, 2)
}
