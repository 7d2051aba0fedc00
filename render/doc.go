/*
Package render turns components into HTML elements.

The renderer is the consumer of the class and style resolution: it calls
component.BuildClass and component.BuildStyle once per pass and attaches
the results, together with the attribute bag and attribute-bound
properties, to an element of the x/net/html node tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssattr.render'
func tracer() tracing.Trace {
	return tracing.Select("cssattr.render")
}
