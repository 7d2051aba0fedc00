/*
Package style provides inline style properties for components.

An inline style is an ordered list of property declarations, as found in
the style attribute of an HTML element. Package style offers a
representation as an ordered property map and parses inline style strings
with the help of the douceur CSS parser
(https://github.com/aymerick/douceur).

# Status

The API is reasonably stable. Property values are kept verbatim; no
validation against CSS property grammars is done.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssattr.style'
func tracer() tracing.Trace {
	return tracing.Select("cssattr.style")
}
