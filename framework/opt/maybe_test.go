package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaybeZeroValueIsNone(t *testing.T) {
	var m Maybe[string]
	assert.False(t, m.IsDefined())
	assert.Equal(t, "", m.Value())
}

func TestSome(t *testing.T) {
	m := Some(3)
	assert.True(t, m.IsDefined())
	assert.Equal(t, 3, m.Value())

	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestNone(t *testing.T) {
	m := None[int]()
	assert.False(t, m.IsDefined())
	assert.Equal(t, 0, m.Value())

	_, ok := m.Get()
	assert.False(t, ok)
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, "a", Some("a").OrElse("b"))
	assert.Equal(t, "b", None[string]().OrElse("b"))
}
