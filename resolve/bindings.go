package resolve

import (
	"strings"

	"github.com/npillmayer/cssattr/rule"
	"github.com/npillmayer/cssattr/scan"
)

// Binding pairs a property with the single rule governing it.
type Binding struct {
	Property   string
	Rule       rule.Rule
	Capability string // declaring capability, empty for the type itself
}

// Bindings merges scan results into the list of active class rules, one per
// property at most, in property order.
//
// A rule on the type's own property always wins. Otherwise the rule of the
// last capability in scan order declaring the property is used.
func Bindings(res scan.Result) []Binding {
	return bind(res, func(p scan.Property) *rule.Rule { return p.CSS })
}

// StyleBindings is like Bindings, for style rules.
func StyleBindings(res scan.Result) []Binding {
	return bind(res, func(p scan.Property) *rule.Rule { return p.Style })
}

func bind(res scan.Result, pick func(scan.Property) *rule.Rule) []Binding {
	var bindings []Binding
	for _, name := range res.Properties {
		p, capability, ok := winner(res, name, func(p scan.Property) bool {
			return pick(p) != nil
		})
		if !ok {
			continue
		}
		bindings = append(bindings, Binding{
			Property:   name,
			Rule:       *pick(p),
			Capability: capability,
		})
	}
	return bindings
}

// winner finds the property declaration governing name: the type's own
// declaration if it qualifies, else the last qualifying capability.
func winner(res scan.Result, name string, qualifies func(scan.Property) bool) (scan.Property, string, bool) {
	if p, ok := res.Own[name]; ok && qualifies(p) {
		return p, "", true
	}
	var found scan.Property
	var capability string
	var ok bool
	for _, decl := range res.Inherited {
		if p, declared := decl.Props[name]; declared && qualifies(p) {
			if ok {
				tracer().Debugf("resolve: %s.%s overrides declaration of %s",
					decl.Capability, name, capability)
			}
			found, capability, ok = p, decl.Capability, true
		}
	}
	return found, capability, ok
}

// Attribute is a property rendered as an HTML attribute.
type Attribute struct {
	Property string
	Name     string // attribute name
}

// Attributes lists the HTML attribute bindings of a component type, with the
// same precedence as Bindings. Attributes bound without a name are named
// after the lower-cased property.
func Attributes(res scan.Result) []Attribute {
	var attrs []Attribute
	for _, name := range res.Properties {
		p, _, ok := winner(res, name, func(p scan.Property) bool {
			return p.Attr != nil
		})
		if !ok {
			continue
		}
		a := *p.Attr
		if a == "" {
			a = strings.ToLower(name)
		}
		attrs = append(attrs, Attribute{Property: name, Name: a})
	}
	return attrs
}
