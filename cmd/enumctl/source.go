package main

import (
	"fmt"

	"github.com/joshuapare/enumkit/enumeration"
	"github.com/joshuapare/enumkit/multiton"
	"github.com/joshuapare/enumkit/pkg/enumfile"
)

const (
	originBuiltin = "builtin"
	originFile    = "file"
)

// enumType is one enumeration visible to the CLI.
type enumType struct {
	desc        multiton.Descriptor
	origin      string
	description string
	values      *enumfile.Enumeration // set for file types
}

// source is every enumeration visible to a command: the catalogued types
// followed by the ones declared in the definitions file. A file type
// shadows a catalogued type of the same name.
type source struct {
	types  []enumType
	byName map[string]int
}

func loadSource() (*source, error) {
	s := &source{byName: make(map[string]int)}
	for _, d := range multiton.Defined() {
		s.add(enumType{desc: d, origin: originBuiltin})
	}

	path := cfg.GetString("file")
	if path == "" {
		return s, nil
	}
	set, err := enumfile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, name := range set.Names() {
		e, _ := set.Get(name)
		def, _ := set.Definition(name)
		s.add(enumType{desc: e, origin: originFile, description: def.Description, values: e})
	}
	return s, nil
}

func (s *source) add(t enumType) {
	if i, ok := s.byName[t.desc.Name()]; ok {
		s.types[i] = t
		return
	}
	s.byName[t.desc.Name()] = len(s.types)
	s.types = append(s.types, t)
}

func (s *source) get(name string) (enumType, error) {
	i, ok := s.byName[name]
	if !ok {
		return enumType{}, fmt.Errorf("unknown enumeration type %q", name)
	}
	return s.types[i], nil
}

// memberView is the printable form of one member.
type memberView struct {
	Key         string `json:"key"`
	Value       any    `json:"value,omitempty"`
	HasValue    bool   `json:"-"`
	Description string `json:"description,omitempty"`
}

func viewOf(m multiton.Member) memberView {
	v := memberView{Key: m.Key()}
	v.Value, v.HasValue = enumeration.ValueOf(m)
	if fm, ok := m.(*enumfile.Member); ok {
		v.Description = fm.Description
	}
	return v
}

func (v memberView) String() string {
	if !v.HasValue {
		return v.Key
	}
	s := v.Key + "\t" + formatValue(v.Value)
	if v.Description != "" {
		s += "\t# " + v.Description
	}
	return s
}

// formatValue renders v the way it would be written in a definitions file.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "~"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

// findByValue returns the first member of t whose value equals v. File
// types are typed enumerations; catalogued types are only reachable
// through their Descriptor and are scanned.
func findByValue(t enumType, v any) (multiton.Member, error) {
	if t.values != nil {
		m, err := t.values.ByValue(v)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	members, err := t.desc.Entries()
	if err != nil {
		return nil, err
	}
	valued := false
	for _, m := range members {
		mv, ok := enumeration.ValueOf(m)
		if !ok {
			continue
		}
		valued = true
		if mv == v {
			return m, nil
		}
	}
	if !valued && len(members) > 0 {
		return nil, fmt.Errorf("%s is not a value enumeration", t.desc.Name())
	}
	return nil, multiton.UndefinedValue(t.desc.Name(), v)
}
