package scan

import (
	"sort"

	"github.com/npillmayer/cssattr/rule"
)

// Declared collects the properties of one capability.
type Declared struct {
	Capability string
	Props      map[string]Property
}

// Result is the outcome of scanning a component type: every rule the type
// and its capabilities declare, not yet merged.
type Result struct {
	Name           string
	ClassRule      *rule.Rule          // construct-level rule of the type itself
	InterfaceRules []rule.Rule         // construct-level rules of capabilities, by order
	Properties     []string            // property names: own first, then capability-only
	Own            map[string]Property // properties declared by the type itself
	Inherited      []Declared          // capability properties, capabilities in scan order
}

// Scan discovers all rules of a component type. Capabilities are visited
// depth first, a capability's own capabilities before itself, each at most
// once; this is the scan order of Result.Inherited.
//
// Scan is a pure read of d. An empty descriptor yields an empty result.
func Scan(d *Descriptor) Result {
	res := Result{Own: map[string]Property{}}
	if d == nil {
		return res
	}
	res.Name = d.name
	if d.rule != nil {
		r := *d.rule
		res.ClassRule = &r
	}
	seen := map[string]bool{}
	for _, p := range d.props {
		res.Own[p.Name] = p
		res.Properties = append(res.Properties, p.Name)
		seen[p.Name] = true
	}
	caps := flatten(d.caps, nil, map[*Descriptor]bool{})
	for _, c := range caps {
		if c.rule != nil {
			r := *c.rule
			r.Source = rule.InterfaceLevel
			res.InterfaceRules = append(res.InterfaceRules, r)
		}
		decl := Declared{Capability: c.name, Props: make(map[string]Property, len(c.props))}
		for _, p := range c.props {
			decl.Props[p.Name] = p
			if !seen[p.Name] {
				res.Properties = append(res.Properties, p.Name)
				seen[p.Name] = true
			}
		}
		res.Inherited = append(res.Inherited, decl)
	}
	sort.SliceStable(res.InterfaceRules, func(i, j int) bool {
		return res.InterfaceRules[i].Order < res.InterfaceRules[j].Order
	})
	tracer().P("type", d.name).Debugf("scan: %d properties, %d capabilities",
		len(res.Properties), len(caps))
	return res
}

func flatten(caps []*Descriptor, acc []*Descriptor, visited map[*Descriptor]bool) []*Descriptor {
	for _, c := range caps {
		if visited[c] {
			continue
		}
		visited[c] = true
		acc = flatten(c.caps, acc, visited)
		acc = append(acc, c)
	}
	return acc
}
