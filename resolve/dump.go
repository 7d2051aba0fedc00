package resolve

import (
	"fmt"

	"github.com/npillmayer/cssattr/scan"
	"github.com/xlab/treeprint"
)

// Dump returns a printable tree of the effective rules of a scan result:
// construct-level rules and, per property, the winning class, style and
// attribute bindings together with their origin.
func Dump(res scan.Result) string {
	printer := treeprint.New()
	root := printer.AddBranch(res.Name)
	for _, r := range res.InterfaceRules {
		root.AddNode(r.String())
	}
	if res.ClassRule != nil {
		root.AddNode(res.ClassRule.String())
	}
	bindings := make(map[string][]string)
	note := func(b Binding) {
		origin := "own"
		if b.Capability != "" {
			origin = "from " + b.Capability
		}
		bindings[b.Property] = append(bindings[b.Property], fmt.Sprintf("%s (%s)", b.Rule, origin))
	}
	for _, b := range Bindings(res) {
		note(b)
	}
	for _, b := range StyleBindings(res) {
		note(b)
	}
	for _, a := range Attributes(res) {
		bindings[a.Property] = append(bindings[a.Property], fmt.Sprintf("attr %q", a.Name))
	}
	for _, name := range res.Properties {
		if len(bindings[name]) == 0 {
			continue
		}
		pb := root.AddBranch(name)
		for _, s := range bindings[name] {
			pb.AddNode(s)
		}
	}
	return printer.String()
}
