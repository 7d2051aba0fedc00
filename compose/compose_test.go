package compose_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssattr/compose"
	"github.com/npillmayer/cssattr/style"
	"github.com/npillmayer/cssattr/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type size int

var sizes = value.Enumeration[size]{{Name: "SM", Token: "sm"}, {Name: "LG"}}

func (s size) EnumMember() value.Member { return sizes.Member(s) }

func TestClassesOrder(t *testing.T) {
	c := compose.NewClasses()
	c.Put(
		compose.Token{Name: "b", Order: 2},
		compose.Token{Name: "a", Order: 1},
		compose.Token{Name: "c", Order: 1},
	)
	assert.Equal(t, "a c b", c.String())
}

func TestClassesDuplicateTakesLastOrder(t *testing.T) {
	c := compose.NewClasses()
	c.Put(
		compose.Token{Name: "x", Order: 0},
		compose.Token{Name: "y", Order: 1},
		compose.Token{Name: "x", Order: 5},
	)
	assert.Equal(t, "y x", c.String())
}

func TestClassesSupplementary(t *testing.T) {
	c := compose.NewClasses()
	c.Put(compose.Token{Name: "btn", Order: 10})
	c.Add("extra", "btn", "  ")
	c.AddIf(false, "never")
	c.AddIf(true, "always")
	assert.Equal(t, "btn extra always", c.String())
}

func TestClassesSingleShot(t *testing.T) {
	c := compose.NewClasses()
	c.Put(compose.Token{Name: "m-1"})
	assert.False(t, c.Empty())
	l := c.List()
	assert.Equal(t, compose.ClassList{"m-1"}, l)
	assert.Equal(t, "m-1", c.String())
	assert.True(t, c.Empty())
	assert.Equal(t, "", c.String(), "second consumption must be empty")
}

func TestClassList(t *testing.T) {
	l := compose.ParseClassList("a b  c d")
	assert.Equal(t, "a b c d", l.String())
	assert.Equal(t, 4, l.Len())

	l, err := compose.NewClassList("a", value.NewClass("b"), size(0), size(1))
	require.NoError(t, err)
	assert.Equal(t, "a b sm lg", l.String())

	c := compose.NewClasses().Add("a").Add("b").Add("c")
	assert.Equal(t, "a b c", c.List().String())
}

func TestClassListNil(t *testing.T) {
	var p *string
	_, err := compose.NewClassList("a", nil)
	assert.True(t, errors.Is(err, compose.ErrInvalidArgument))
	_, err = compose.NewClassList(p)
	assert.True(t, errors.Is(err, compose.ErrInvalidArgument))
}

func TestStyles(t *testing.T) {
	s := compose.NewStyles()
	s.Add("a", "b").Add("c", "d")
	assert.Equal(t, "a:b;c:d", s.String())
	assert.Equal(t, "", s.String(), "second consumption must be empty")

	s.Add("q", "w").Add("a", "s").Add("q", "x").AddIf(false, "z", "z")
	assert.Equal(t, "q:x;a:s", s.Map().String())
	assert.Equal(t, "q:x;a:s", s.String())
	assert.True(t, s.Empty())
}

func TestStylesMerge(t *testing.T) {
	s := compose.NewStyles()
	s.Put(style.KeyValue{Key: "max-height", Value: "120"})
	require.NoError(t, s.Merge(style.MustParse("color:red;max-height:50")))
	assert.Equal(t, "max-height:50;color:red", s.String())
	assert.ErrorIs(t, s.Merge(nil), compose.ErrInvalidArgument)
}

func TestStylesReset(t *testing.T) {
	s := compose.NewStyles()
	s.Add("a", "b")
	s.Reset()
	assert.True(t, s.Empty())
	s.Add("c", "d")
	assert.Equal(t, "c:d", s.String())
}
