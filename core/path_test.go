package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/netsim/core"
)

func TestPath_Accessors(t *testing.T) {
	p := core.Path{1, 2, 6, 10, 4}
	assert.Equal(t, 1, p.Source())
	assert.Equal(t, 4, p.Destination())
	assert.Equal(t, 4, p.Hops())
	assert.Equal(t, core.Path{4, 10, 6, 2, 1}, p.Reverse())
	assert.Equal(t, "[1, 2, 6, 10, 4]", p.String())

	var empty core.Path
	assert.Equal(t, -1, empty.Source())
	assert.Equal(t, -1, empty.Destination())
	assert.Equal(t, 0, empty.Hops())
	assert.Nil(t, empty.Reverse())
	assert.Equal(t, "[]", empty.String())
}

func TestPath_EqualAndClone(t *testing.T) {
	p := core.Path{3, 1}
	c := p.Clone()
	assert.True(t, p.Equal(c))
	c[0] = 9
	assert.False(t, p.Equal(c))
	assert.False(t, p.Equal(core.Path{3}))
	assert.True(t, core.Path{7}.Equal(core.Path{7}.Reverse()))
}
