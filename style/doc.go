/*
Package style holds the values of CSS-object style rules.

A style rule is declared as an ordered list of key/value pairs. Most keys
are CSS properties, e.g.

	color: red

but some keys are directives addressed to plugins of the styling engine
rather than to the browser. The most prominent of these is `composes`,
which lets a rule borrow the class names of other rules. Directives are
removed from a rule's block before the rule is rendered as CSS.

Status

This is a first draft. It is unstable and the API may change without
notice.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssobj.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssobj.style")
}
