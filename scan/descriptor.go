package scan

import (
	"fmt"

	"github.com/npillmayer/cssattr/rule"
	"github.com/xlab/treeprint"
)

// Property is a component parameter as seen by the scanner, together with
// the rules attached directly to it.
type Property struct {
	Name  string
	CSS   *rule.Rule // class rule, if any
	Style *rule.Rule // style rule, if any
	Attr  *string    // name of an HTML attribute the property is rendered to
}

// HasRules is true if any rule or attribute binding is attached to p.
func (p Property) HasRules() bool {
	return p.CSS != nil || p.Style != nil || p.Attr != nil
}

// Descriptor is the static rule table of a component type or of a
// capability. Descriptors are immutable once built and may be shared
// between goroutines.
type Descriptor struct {
	name  string
	tag   string
	rule  *rule.Rule
	caps  []*Descriptor
	props []Property
	index map[string]int
}

// Name returns the name of the component type or capability.
func (d *Descriptor) Name() string {
	return d.name
}

// Tag returns the HTML tag name declared for the component type, if any.
func (d *Descriptor) Tag() string {
	return d.tag
}

// Rule returns the construct-level rule, if any.
func (d *Descriptor) Rule() (rule.Rule, bool) {
	if d.rule == nil {
		return rule.Rule{}, false
	}
	return *d.rule, true
}

// Capabilities returns the capabilities directly implemented by d, in
// declaration order.
func (d *Descriptor) Capabilities() []*Descriptor {
	return d.caps
}

// Properties returns the properties declared by d itself, in declaration
// order.
func (d *Descriptor) Properties() []Property {
	return d.props
}

// Property looks up a property declared by d itself.
func (d *Descriptor) Property(name string) (Property, bool) {
	if i, ok := d.index[name]; ok {
		return d.props[i], true
	}
	return Property{}, false
}

// IsEmpty is true if d declares neither rules, attribute bindings, a tag
// nor capabilities.
func (d *Descriptor) IsEmpty() bool {
	if d.rule != nil || d.tag != "" || len(d.caps) > 0 {
		return false
	}
	for _, p := range d.props {
		if p.HasRules() {
			return false
		}
	}
	return true
}

// Tree returns a printable tree of the rule table, for debugging.
func (d *Descriptor) Tree() string {
	printer := treeprint.New()
	d.print(printer.AddBranch(d.label()))
	return printer.String()
}

func (d *Descriptor) label() string {
	if d.tag != "" {
		return fmt.Sprintf("%s <%s>", d.name, d.tag)
	}
	return d.name
}

func (d *Descriptor) print(branch treeprint.Tree) {
	if d.rule != nil {
		branch.AddNode(d.rule.String())
	}
	for _, p := range d.props {
		if !p.HasRules() {
			branch.AddNode(p.Name)
			continue
		}
		pb := branch.AddBranch(p.Name)
		if p.CSS != nil {
			pb.AddNode(p.CSS.String())
		}
		if p.Style != nil {
			pb.AddNode(p.Style.String())
		}
		if p.Attr != nil {
			pb.AddNode(fmt.Sprintf("attr %q", *p.Attr))
		}
	}
	for _, c := range d.caps {
		c.print(branch.AddBranch("implements " + c.label()))
	}
}

// --- Builder ---------------------------------------------------------------

// Builder declares the rule table of a component type or capability.
//
//	rounded := scan.Declare("Rounded").
//	    Class("rounded", rule.Order(1)).
//	    Prop("RoundedStyles", rule.Prefix("rounded-")).
//	    Capability()
//	button := scan.Declare("Button").Tag("button").
//	    Class("btn").
//	    Implements(rounded).
//	    Prop("Color", rule.Prefix("btn-")).
//	    Build()
type Builder struct {
	d Descriptor
}

// Declare starts the declaration of a component type or capability.
func Declare(name string) *Builder {
	return &Builder{d: Descriptor{name: name}}
}

// Tag declares the HTML tag name of the component.
func (b *Builder) Tag(name string) *Builder {
	b.d.tag = name
	return b
}

// Class declares the construct-level rule.
func (b *Builder) Class(token string, opts ...rule.Option) *Builder {
	r := rule.Construct(token, opts...)
	b.d.rule = &r
	return b
}

// Implements adds capabilities. Capabilities declared later take
// precedence over earlier ones for same-named properties.
func (b *Builder) Implements(caps ...*Descriptor) *Builder {
	for _, c := range caps {
		if c != nil {
			b.d.caps = append(b.d.caps, c)
		}
	}
	return b
}

// Prop declares a property and attaches rules to it. A style rule is
// attached as the property's style rule, any other rule as its class rule.
// Calling Prop without rules declares a plain property. Declaring a
// property twice merges the rules.
func (b *Builder) Prop(name string, rules ...rule.Rule) *Builder {
	p := b.property(name)
	for _, r := range rules {
		r := r
		r.Source = rule.PropertyLevel
		if r.Kind() == rule.KindStyle {
			p.Style = &r
		} else {
			p.CSS = &r
		}
	}
	return b
}

// Style declares a property rendered as style entry styleName:value.
func (b *Builder) Style(name, styleName string) *Builder {
	return b.Prop(name, rule.Style(styleName))
}

// Attr declares a property rendered as HTML attribute. An empty attribute
// name stands for the lower-cased property name.
func (b *Builder) Attr(name, attr string) *Builder {
	p := b.property(name)
	p.Attr = &attr
	return b
}

func (b *Builder) property(name string) *Property {
	if b.d.index == nil {
		b.d.index = make(map[string]int)
	}
	i, ok := b.d.index[name]
	if !ok {
		i = len(b.d.props)
		b.d.index[name] = i
		b.d.props = append(b.d.props, Property{Name: name})
	}
	return &b.d.props[i]
}

// Build finishes the declaration of a component type.
func (b *Builder) Build() *Descriptor {
	return b.finish(rule.ClassLevel)
}

// Capability finishes the declaration of a capability.
func (b *Builder) Capability() *Descriptor {
	return b.finish(rule.InterfaceLevel)
}

func (b *Builder) finish(level rule.Source) *Descriptor {
	d := b.d // copy, the builder may be re-used
	if d.rule != nil {
		r := *d.rule
		r.Source = level
		d.rule = &r
	}
	d.caps = append([]*Descriptor(nil), d.caps...)
	d.props = append([]Property(nil), d.props...)
	d.index = make(map[string]int, len(d.props))
	for i, p := range d.props {
		d.index[p.Name] = i
	}
	return &d
}
