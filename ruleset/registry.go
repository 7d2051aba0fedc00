package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/cssattr/component"
	"github.com/npillmayer/cssattr/resolve"
	"github.com/npillmayer/cssattr/rule"
	"github.com/npillmayer/cssattr/scan"
	"github.com/npillmayer/cssattr/value"
	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Registry holds the component descriptors built from a rule set.
type Registry struct {
	set        *Set
	components map[string]*scan.Descriptor
	caps       map[string]*scan.Descriptor
	enums      map[string][]value.Member
	enumOf     map[string]map[string]string // component -> property -> enumeration
}

// LoadFile reads a rule set from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return load(path, data)
}

// Load reads a rule set from YAML.
func Load(in io.Reader) (*Registry, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return load("", data)
}

func load(path string, data []byte) (*Registry, error) {
	var set Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newValidationError("", "rule set is empty", err)
		}
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	return New(&set)
}

func extractLine(err error) int {
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return line
}

// New validates a rule set and builds the descriptors of its components.
func New(set *Set) (*Registry, error) {
	if err := Validate(set); err != nil {
		tracer().Errorf("ruleset: %v", err)
		return nil, err
	}
	reg := &Registry{
		set:        set,
		components: make(map[string]*scan.Descriptor, len(set.Components)),
		caps:       make(map[string]*scan.Descriptor, len(set.Capabilities)),
		enums:      make(map[string][]value.Member, len(set.Enums)),
		enumOf:     make(map[string]map[string]string),
	}
	for _, e := range set.Enums {
		members := make([]value.Member, len(e.Members))
		for i, m := range e.Members {
			members[i] = value.Member{Name: m.Name, Token: m.Token}
		}
		reg.enums[e.Name] = members
	}
	specs := make(map[string]ComponentSpec, len(set.Capabilities))
	for _, c := range set.Capabilities {
		specs[c.Name] = c
	}
	for _, c := range set.Capabilities {
		reg.capability(c.Name, specs)
	}
	for _, c := range set.Components {
		d := reg.declare(c).Build()
		reg.components[c.Name] = d
		reg.enumOf[c.Name] = reg.enumProperties(c, specs)
	}
	tracer().Infof("ruleset: loaded %d components, %d capabilities",
		len(reg.components), len(reg.caps))
	return reg, nil
}

// capability builds capabilities depth-first; Validate has ruled out cycles.
func (reg *Registry) capability(name string, specs map[string]ComponentSpec) *scan.Descriptor {
	if d, ok := reg.caps[name]; ok {
		return d
	}
	for _, sub := range specs[name].Implements {
		reg.capability(sub, specs)
	}
	d := reg.declare(specs[name]).Capability()
	reg.caps[name] = d
	return d
}

func (reg *Registry) declare(c ComponentSpec) *scan.Builder {
	b := scan.Declare(c.Name).Tag(c.Tag)
	if c.Class != nil {
		b.Class(c.Class.Token, options(c.Class)...)
	}
	for _, name := range c.Implements {
		b.Implements(reg.caps[name])
	}
	for _, p := range c.Properties {
		if p.CSS != nil {
			b.Prop(p.Name, rule.Prefix(p.CSS.Token, options(p.CSS)...))
		}
		if p.Style != "" {
			b.Style(p.Name, p.Style)
		}
		if p.Attr != nil {
			b.Attr(p.Name, *p.Attr)
		}
	}
	return b
}

func options(r *RuleSpec) []rule.Option {
	opts := []rule.Option{rule.Order(r.Order)}
	if r.Suffix {
		opts = append(opts, rule.AsSuffix())
	}
	if r.NullToken != "" {
		opts = append(opts, rule.Null(r.NullToken))
	}
	if r.TrueToken != "" || r.FalseToken != "" {
		opts = append(opts, rule.WithBool(r.TrueToken, r.FalseToken))
	}
	return opts
}

// enumProperties collects the enumeration bindings of a component,
// including those of its capabilities. Own declarations win.
func (reg *Registry) enumProperties(c ComponentSpec, specs map[string]ComponentSpec) map[string]string {
	m := make(map[string]string)
	var collect func(ComponentSpec)
	collect = func(c ComponentSpec) {
		for _, name := range c.Implements {
			collect(specs[name])
		}
		for _, p := range c.Properties {
			if p.Enum != "" {
				m[p.Name] = p.Enum
			}
		}
	}
	collect(c)
	return m
}

// Names returns the names of all components, sorted.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.components))
	for name := range reg.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component returns the descriptor of a component.
func (reg *Registry) Component(name string) (*scan.Descriptor, bool) {
	d, ok := reg.components[name]
	return d, ok
}

// Capability returns the descriptor of a capability.
func (reg *Registry) Capability(name string) (*scan.Descriptor, bool) {
	d, ok := reg.caps[name]
	return d, ok
}

// Set returns the rule set the registry has been built from.
func (reg *Registry) Set() *Set {
	return reg.set
}

// Value converts a raw text value for a property of a component:
//
//	"" or "nil"          => nil (absent)
//	"true" / "false"     => bool
//	member name          => enumeration member, for enum properties
//	"a,b,c"              => collection
//	anything else        => the text itself
func (reg *Registry) Value(comp, prop, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "nil" {
		return nil, nil
	}
	if enum, ok := reg.enumOf[comp][prop]; ok {
		for _, m := range reg.enums[enum] {
			if strings.EqualFold(m.Name, raw) {
				return Member{Enum: enum, Member: m}, nil
			}
		}
		return nil, fmt.Errorf("ruleset: %q is not a member of enumeration %s", raw, enum)
	}
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if strings.Contains(raw, ",") {
		items := strings.Split(raw, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return items, nil
	}
	return raw, nil
}

// Params converts assignments "Property=value" into parameter values for
// a component.
func (reg *Registry) Params(comp string, assignments ...string) (resolve.Params, error) {
	if _, ok := reg.components[comp]; !ok {
		return nil, fmt.Errorf("ruleset: unknown component %q", comp)
	}
	params := make(resolve.Params, len(assignments))
	for _, a := range assignments {
		prop, raw, ok := strings.Cut(a, "=")
		prop = strings.TrimSpace(prop)
		if !ok || prop == "" {
			return nil, fmt.Errorf("ruleset: assignment %q is not of the form Property=value", a)
		}
		v, err := reg.Value(comp, prop, raw)
		if err != nil {
			return nil, err
		}
		params[prop] = v
	}
	return params, nil
}

// Instance creates a component instance of a declared component type.
func (reg *Registry) Instance(comp string, params resolve.Params) (*component.Base, error) {
	d, ok := reg.components[comp]
	if !ok {
		return nil, fmt.Errorf("ruleset: unknown component %q", comp)
	}
	return &component.Base{Descriptor: d, Values: params}, nil
}

// Member is an enumeration member declared in a rule set.
type Member struct {
	Enum string
	value.Member
}

// EnumMember is part of interface value.Enumerated.
func (m Member) EnumMember() value.Member {
	return m.Member
}

func (m Member) String() string {
	return m.Enum + "." + m.Name
}
