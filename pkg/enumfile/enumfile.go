package enumfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/enumkit/enumeration"
	"github.com/joshuapare/enumkit/multiton"
)

var (
	// ErrSyntax indicates the document does not have the expected shape.
	ErrSyntax = errors.New("enumfile: invalid definition")
	// ErrUnknownBase indicates an extends reference to an undefined type.
	ErrUnknownBase = errors.New("enumfile: unknown base type")
	// ErrCycle indicates types that extend each other.
	ErrCycle = errors.New("enumfile: extension cycle")
)

// Member is a member of a YAML-declared enumeration.
type Member struct {
	enumeration.Member[any]
	Description string
}

// Enumeration is a YAML-declared value enumeration.
type Enumeration = enumeration.Enumeration[*Member, any]

// Declared is one member declaration as written in the file.
type Declared struct {
	Key         string
	Value       any
	Description string
	Line        int
}

// Definition is one type as written in the file.
type Definition struct {
	Name            string
	Description     string
	Extends         string
	CaseInsensitive bool
	Values          []Declared // own declarations only, in order
	Line            int
}

// Set holds every type declared by one document.
type Set struct {
	defs   []*Definition
	byName map[string]*Definition
	enums  map[string]*Enumeration
}

// LoadFile reads and parses the definitions in path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return s, nil
}

// Load parses definitions from r. Registries are created but not populated.
func Load(r io.Reader) (*Set, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return newSet(nil)
		}
		return nil, fmt.Errorf("decoding: %w", err)
	}

	defs, err := parseDocument(&doc)
	if err != nil {
		return nil, err
	}
	return newSet(defs)
}

func newSet(defs []*Definition) (*Set, error) {
	s := &Set{
		defs:   defs,
		byName: make(map[string]*Definition, len(defs)),
		enums:  make(map[string]*Enumeration, len(defs)),
	}
	for _, d := range defs {
		if prev, ok := s.byName[d.Name]; ok {
			return nil, fmt.Errorf("%w: line %d: duplicate entries for %q (first at line %d)", ErrSyntax, d.Line, d.Name, prev.Line)
		}
		s.byName[d.Name] = d
	}

	for _, d := range defs {
		lineage, err := s.lineage(d)
		if err != nil {
			return nil, err
		}

		var steps []multiton.PopulateFunc[*Member]
		for _, anc := range lineage {
			steps = append(steps, populate(anc.Values))
		}

		var opts []multiton.Option
		if d.CaseInsensitive {
			opts = append(opts, multiton.WithCaseFold())
		}
		s.enums[d.Name] = enumeration.New[*Member, any](d.Name, multiton.Chain(steps...), opts...)
	}
	return s, nil
}

// lineage returns d's ancestors root first, ending with d itself.
func (s *Set) lineage(d *Definition) ([]*Definition, error) {
	var chain []*Definition
	seen := make(map[string]bool)
	for cur := d; cur != nil; {
		if seen[cur.Name] {
			return nil, fmt.Errorf("%w: %s", ErrCycle, cycleString(chain, cur.Name))
		}
		seen[cur.Name] = true
		chain = append(chain, cur)

		if cur.Extends == "" {
			break
		}
		base, ok := s.byName[cur.Extends]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %s extends %q", ErrUnknownBase, cur.Line, cur.Name, cur.Extends)
		}
		cur = base
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

func cycleString(chain []*Definition, again string) string {
	names := make([]string, 0, len(chain)+1)
	for _, d := range chain {
		names = append(names, d.Name)
	}
	return strings.Join(append(names, again), " -> ")
}

func populate(values []Declared) multiton.PopulateFunc[*Member] {
	return func(r *multiton.Registrar[*Member]) error {
		for _, v := range values {
			m := &Member{
				Member:      enumeration.NewMember(v.Key, v.Value),
				Description: v.Description,
			}
			if err := r.Add(m); err != nil {
				return err
			}
		}
		return nil
	}
}

// Names returns the declared type names in document order.
func (s *Set) Names() []string {
	names := make([]string, len(s.defs))
	for i, d := range s.defs {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of declared types.
func (s *Set) Len() int { return len(s.defs) }

// Get returns the enumeration declared under name.
func (s *Set) Get(name string) (*Enumeration, bool) {
	e, ok := s.enums[name]
	return e, ok
}

// Definition returns the declaration of name as written in the file.
func (s *Set) Definition(name string) (*Definition, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Validate populates every type and returns all population errors joined.
func (s *Set) Validate() error {
	var errs []error
	for _, d := range s.defs {
		if err := s.enums[d.Name].Load(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ParseValue decodes a single YAML scalar, the way member values in a
// file are decoded: `1` is an int, `"1"` a string, `true` a bool and `~`
// (or an empty string) nil.
func ParseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("parsing value %q: %w", s, err)
	}
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return nil, fmt.Errorf("%w: value %q is not a scalar", ErrSyntax, s)
	}
	return v, nil
}
