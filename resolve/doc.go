/*
Package resolve turns scanned presentation rules plus live parameter values
into class tokens and style entries.

Resolution happens in two steps. First the precedence between rules is
settled: for every property at most one rule remains active, and a rule
declared on the component type itself beats rules declared by its
capabilities (Bindings). Then every active binding is evaluated against the
current value of its property (CSS, Style).

Construct-level rules, i.e. rules on a component type or capability as a
whole, take no part in property precedence. They contribute their token
unconditionally (Construct).

Nothing is cached between passes; every call works on the rule tables and
values as they are.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resolve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssattr.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("cssattr.resolve")
}
