package multiton

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type colour struct {
	Base
	hex string
}

type shade struct {
	Base
}

var colours = Define("CatalogColour", func(r *Registrar[*colour]) error {
	for _, c := range []*colour{
		{Base: NewBase("RED"), hex: "#ff0000"},
		{Base: NewBase("GREEN"), hex: "#00ff00"},
		{Base: NewBase("BLUE"), hex: "#0000ff"},
	} {
		if err := r.Add(c); err != nil {
			return err
		}
	}
	return nil
})

func TestCatalog_Of(t *testing.T) {
	r, ok := Of[*colour]()
	require.True(t, ok)
	require.Same(t, colours, r)

	_, ok = Of[*shade]()
	require.False(t, ok)
}

func TestCatalog_Lookup(t *testing.T) {
	d, ok := Lookup("CatalogColour")
	require.True(t, ok)
	require.Equal(t, "CatalogColour", d.Name())

	keys, err := d.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"RED", "GREEN", "BLUE"}, keys)
	require.Equal(t, StatePopulated, d.State())

	_, ok = Lookup("NoSuchType")
	require.False(t, ok)
}

func TestCatalog_DescriptorEntries(t *testing.T) {
	d, ok := Lookup("CatalogColour")
	require.True(t, ok)

	entries, err := d.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Same(t, colours.MustByKey("GREEN"), entries[1])

	m, err := d.Entry("BLUE")
	require.NoError(t, err)
	require.Same(t, colours.MustByKey("BLUE"), m)

	m, err = d.Entry("PURPLE")
	require.ErrorIs(t, err, ErrUndefinedInstance)
	require.Nil(t, m)
}

func TestCatalog_DefinedContainsRegistry(t *testing.T) {
	var found bool
	for _, d := range Defined() {
		if d.Name() == "CatalogColour" {
			found = true
		}
	}
	require.True(t, found)
}

func TestCatalog_DefinePanicsOnDuplicates(t *testing.T) {
	noop := func(*Registrar[*colour]) error { return nil }

	// Same Go type under a new name.
	require.Panics(t, func() { Define("OtherColour", noop) })

	// Same name for a different Go type.
	require.Panics(t, func() {
		Define("CatalogColour", func(*Registrar[*shade]) error { return nil })
	})

	_, ok := Lookup("OtherColour")
	require.False(t, ok)
}

func TestCatalog_IsolatedInstance(t *testing.T) {
	c := newCatalog()
	r := New("Local", populateValid(newFixture, nil))

	require.NoError(t, c.add(reflect.TypeFor[*fixture](), r))
	require.Error(t, c.add(reflect.TypeFor[*fixture](), r))

	d, ok := c.lookup("Local")
	require.True(t, ok)
	require.Equal(t, "Local", d.Name())
	require.Len(t, c.all(), 1)
}
