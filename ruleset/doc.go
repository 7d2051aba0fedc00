/*
Package ruleset reads rule tables from YAML.

Components declared in a rule set have no Go type of their own. A Registry
builds their descriptors and creates instances backed by parameter maps,
which is what tools like the cssattr command work with.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ruleset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssattr.ruleset'.
func tracer() tracing.Trace {
	return tracing.Select("cssattr.ruleset")
}
