/*
Package value classifies the live values of component parameters.

Rules map parameter values to presentation tokens, and the mapping depends
on the kind of value at hand: absent values, booleans, enumeration members,
token collections and plain scalars are all treated differently. Go has no
enumerations and no nullable value types, so this package defines the
conventions: enumerations implement Enumerated, collections implement
Tokens, and nullable parameters are pointers.

Clients destructure a classified value with a Matcher:

	var member value.Member
	switch m := value.Of(x).Match(); m {
	case m.Enum(&member):
	    fmt.Println(member.CSSToken())
	case m.Null():
	    fmt.Println("absent")
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package value
