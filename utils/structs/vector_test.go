package structs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorPrimitive(t *testing.T) {
	v := Vector[int]{1, 2, 3}
	require.Equal(t, 3, v.Size())

	clone := v.Clone()
	require.True(t, v.Equal(clone))
	clone[0] = 99
	require.False(t, v.Equal(clone))

	other := Vector[int]{9, 9, 9}
	v.Copy(other)
	require.Equal(t, Vector[int]{9, 9, 9}, v)
}

type coeffBox struct{ n int }

func (c *coeffBox) Clone() *coeffBox       { return &coeffBox{n: c.n} }
func (c *coeffBox) Copy(o *coeffBox)       { c.n = o.n }
func (c *coeffBox) ShallowCopy() *coeffBox { return &coeffBox{n: c.n} }
func (c *coeffBox) Equal(o *coeffBox) bool { return c.n == o.n }

func TestVectorStruct(t *testing.T) {
	v := Vector[coeffBox]{{n: 1}, {n: 2}}
	clone := v.Clone()
	require.True(t, v.Equal(clone))

	clone[1].n = 5
	require.False(t, v.Equal(clone))

	shallow := v.ShallowCopy()
	require.True(t, v.Equal(shallow))
}
