/*
Package jss is a small styling engine for CSS-object style sheets.

Overview

Style rules are declared as Go values (or loaded from documents, see
package loader) instead of CSS text. The engine turns every named rule
into a CSS class with a generated, sheet-unique class name, and hands
each rule to a pipeline of plugins before the sheet is rendered.

Building a sheet happens in two passes. First, every rule is created in
declaration order; named rules receive their generated class name and
OnCreateRule hooks run. Second, OnProcessRule hooks run for every rule,
again strictly in declaration order.

Plugins may rely on this ordering: when a rule is processed, all rules
declared before it have been processed already. Package compose depends
on this for nested class composition.

Status

This is a first draft. It is unstable and the API may change without
notice.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssobj.jss'.
func tracer() tracing.Trace {
	return tracing.Select("cssobj.jss")
}
