/*
Package scan discovers the presentation rules of component types.

Every component type has a static rule table, a Descriptor. Descriptors are
either declared explicitly with a Builder or derived once per type from
struct tags with FromStruct. A descriptor lists

  - the construct-level rule of the type (its "class rule"),
  - the capabilities the type implements, each again a descriptor with an
    optional construct-level rule and property rules,
  - the properties of the type with the rules attached directly to them.

Scan flattens a descriptor into a Result without merging anything; the
precedence between same-named properties is decided by package resolve.

# Status

The struct tag grammar may still be extended.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssattr.scan'.
func tracer() tracing.Trace {
	return tracing.Select("cssattr.scan")
}
