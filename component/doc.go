/*
Package component is the base for components rendering a class and a style
attribute from declarative rules.

Components embed Base and declare their rules with struct tags (see package
scan) or with an explicit descriptor. Once per rendering pass a renderer
calls BuildClass and BuildStyle and attaches the results:

	b := &Button{Color: Primary}
	class := component.BuildClass(b) // "btn btn-primary"

Explicit overrides take precedence over all computed values, in this order:
a "class"/"style" key in the attribute bag, then the Class/Styles
parameters.

The accumulators of a component are single-shot: each build consumes them.
A component instance must not be built concurrently.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package component

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssattr.component'.
func tracer() tracing.Trace {
	return tracing.Select("cssattr.component")
}
