/*
Package compose serializes resolved class tokens and style entries.

Classes and Styles are per-component accumulators. Each is filled once per
rendering pass and consumed by calling String, which also resets it:

	classes := compose.NewClasses()
	classes.Put(compose.Token{Name: "btn", Order: 0}, compose.Token{Name: "btn-primary", Order: 1})
	classes.AddIf(disabled, "disabled")
	attr := classes.String() // "btn btn-primary disabled"

The accumulators are not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package compose
