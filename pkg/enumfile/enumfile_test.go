package enumfile

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/enumkit/internal/testutil"
	"github.com/joshuapare/enumkit/multiton"
)

const statusDoc = `
HTTPStatus:
  description: Common response codes
  values:
    OK: 200
    Created: 201
    NotFound:
      value: 404
      description: The resource does not exist
ExtendedStatus:
  extends: HTTPStatus
  case-insensitive: true
  values:
    Teapot: 418
Mixed:
  values:
    ZERO: 0
    FALSE: false
    ONE: 1
    STRING_ONE: "1"
    NOTHING: ~
    PI: 3.14
`

func mustLoad(t *testing.T, doc string) *Set {
	t.Helper()
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func TestLoad_OrderAndValues(t *testing.T) {
	s := mustLoad(t, statusDoc)
	require.Equal(t, []string{"HTTPStatus", "ExtendedStatus", "Mixed"}, s.Names())
	require.Equal(t, 3, s.Len())

	status, ok := s.Get("HTTPStatus")
	require.True(t, ok)
	require.Equal(t, multiton.StateUninitialized, status.State())

	keys, err := status.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"OK", "Created", "NotFound"}, keys)

	nf, err := status.ByValue(404)
	require.NoError(t, err)
	require.Equal(t, "NotFound", nf.Key())
	require.Equal(t, "The resource does not exist", nf.Description)
	require.Same(t, status.MustByKey("NotFound"), nf)

	def, ok := s.Definition("HTTPStatus")
	require.True(t, ok)
	require.Equal(t, "Common response codes", def.Description)
	require.Equal(t, 2, def.Line)
}

func TestLoad_Extension(t *testing.T) {
	s := mustLoad(t, statusDoc)

	ext, _ := s.Get("ExtendedStatus")
	keys, err := ext.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"OK", "Created", "NotFound", "Teapot"}, keys)

	// case-insensitive applies to the extended type only
	m, err := ext.ByKey("teapot")
	require.NoError(t, err)
	require.Equal(t, 418, m.Value())

	base, _ := s.Get("HTTPStatus")
	_, err = base.ByValue(418)
	require.ErrorIs(t, err, multiton.ErrUndefinedInstance)
	_, err = base.ByKey("ok")
	require.ErrorIs(t, err, multiton.ErrUndefinedInstance)

	// Inherited members are separate instances.
	require.NotSame(t, base.MustByKey("OK"), ext.MustByKey("OK"))
}

func TestLoad_StrictValues(t *testing.T) {
	s := mustLoad(t, statusDoc)
	mixed, _ := s.Get("Mixed")

	tests := []struct {
		arg  string
		want string
	}{
		{arg: "0", want: "ZERO"},
		{arg: "false", want: "FALSE"},
		{arg: "1", want: "ONE"},
		{arg: `"1"`, want: "STRING_ONE"},
		{arg: "~", want: "NOTHING"},
		{arg: "3.14", want: "PI"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			v, err := ParseValue(tt.arg)
			require.NoError(t, err)
			m, err := mixed.ByValue(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Key())
		})
	}

	for _, arg := range []string{"true", "'0'", "2", "1.0"} {
		v, err := ParseValue(arg)
		require.NoError(t, err)
		_, err = mixed.ByValue(v)
		require.ErrorIs(t, err, multiton.ErrUndefinedInstance, "value %s", arg)
	}
}

func TestLoad_DuplicateMemberKeySurfacesOnAccess(t *testing.T) {
	s := mustLoad(t, `
Broken:
  values:
    A: 1
    B: 2
    A: 3
Fine:
  values:
    X: 1
`)

	broken, _ := s.Get("Broken")
	_, err := broken.Members()
	var dup *multiton.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Broken", dup.Type)
	require.Equal(t, "A", dup.Key)

	err = s.Validate()
	require.ErrorIs(t, err, multiton.ErrDuplicateKey)

	fine, _ := s.Get("Fine")
	require.Equal(t, multiton.StatePopulated, fine.State())
}

func TestLoad_ExtensionDuplicateKey(t *testing.T) {
	s := mustLoad(t, `
Valid:
  values:
    FOO: oof
    BAR: rab
Invalid:
  extends: Valid
  values:
    FOO: shadow
`)
	require.ErrorIs(t, s.Validate(), multiton.ErrDuplicateKey)

	valid, _ := s.Get("Valid")
	require.NoError(t, valid.Load())
	require.Equal(t, "oof", valid.MustByKey("FOO").Value())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown base",
			doc:  "A:\n  extends: Missing\n",
			want: ErrUnknownBase,
		},
		{
			name: "cycle",
			doc:  "A:\n  extends: B\nB:\n  extends: C\nC:\n  extends: A\n",
			want: ErrCycle,
		},
		{
			name: "self extension",
			doc:  "A:\n  extends: A\n",
			want: ErrCycle,
		},
		{
			name: "duplicate type",
			doc:  "A:\n  values:\n    X: 1\nA:\n  values:\n    Y: 2\n",
			want: ErrSyntax,
		},
		{
			name: "top level sequence",
			doc:  "- A\n- B\n",
			want: ErrSyntax,
		},
		{
			name: "unknown field",
			doc:  "A:\n  colour: red\n",
			want: ErrSyntax,
		},
		{
			name: "sequence value",
			doc:  "A:\n  values:\n    X: [1, 2]\n",
			want: ErrSyntax,
		},
		{
			name: "long form without value",
			doc:  "A:\n  values:\n    X:\n      description: nothing\n",
			want: ErrSyntax,
		},
		{
			name: "values not a mapping",
			doc:  "A:\n  values: 3\n",
			want: ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_CycleMessage(t *testing.T) {
	_, err := Load(strings.NewReader("A:\n  extends: B\nB:\n  extends: A\n"))
	require.ErrorIs(t, err, ErrCycle)
	require.Contains(t, err.Error(), "A -> B -> A")
}

func TestLoad_Empty(t *testing.T) {
	for _, doc := range []string{"", "~\n"} {
		s, err := Load(strings.NewReader(doc))
		require.NoError(t, err)
		require.Empty(t, s.Names())
		require.NoError(t, s.Validate())
	}
}

func TestLoad_EmptyDefinition(t *testing.T) {
	s := mustLoad(t, "Nothing:\nAlsoNothing:\n  values:\n")
	for _, name := range s.Names() {
		e, _ := s.Get(name)
		n, err := e.Len()
		require.NoError(t, err)
		require.Zero(t, n)
	}
}

func TestLoad_YAMLAnchors(t *testing.T) {
	s := mustLoad(t, `
Limits:
  values:
    DEFAULT: &def 30
    TIMEOUT: *def
`)
	limits, _ := s.Get("Limits")
	values, err := limits.Values()
	require.NoError(t, err)
	require.Equal(t, []any{30, 30}, values)
}

func TestLoadFile(t *testing.T) {
	path := testutil.WriteDefinitions(t, statusDoc)

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	require.NoError(t, s.Validate())

	_, err = LoadFile(testutil.MissingPath(t, "enums.yml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{in: "1", want: 1},
		{in: `"1"`, want: "1"},
		{in: "true", want: true},
		{in: "GET", want: "GET"},
		{in: "~", want: nil},
		{in: "", want: nil},
		{in: "2.5", want: 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseValue("[1, 2]")
	require.ErrorIs(t, err, ErrSyntax)
	_, err = ParseValue("a: b")
	require.ErrorIs(t, err, ErrSyntax)
}
