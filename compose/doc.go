/*
Package compose resolves the `composes` directive of CSS-object style rules.

A rule may borrow the class names of other rules of its sheet, or of
classes defined elsewhere:

	a: { float: left }
	b: { composes: ['$a', 'clearfix'], color: red }

After processing, rule b carries the class list "<b> <a> clearfix" and
the directive is removed from its declarations, leaving only `color: red`
to be rendered. A token prefixed with `$` references a rule of the same
sheet; any other token is a foreign class name and is used verbatim.

Composition is transitive: a referenced rule contributes its complete
class list as it stands at the time of reference. As the host engine
processes rules in declaration order, a rule referenced by an earlier
declared rule has already resolved its own compositions.

Failed references (unknown rule, a rule composing itself) are reported
as warnings and otherwise ignored; the remaining tokens still compose.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssobj.compose'.
func tracer() tracing.Trace {
	return tracing.Select("cssobj.compose")
}
