/*
Package cssom abstracts over CSS style sheets.

Status

This is a first draft. It is unstable and the API will change without
notice.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Style sheets
come from two sources in this module: sheets built from CSS-object
declarations (package jss), and plain CSS text written by hand or produced
by unrelated pipelines (package douceuradapter). Class names of the latter
are "foreign" to a CSS-object sheet, yet rules may compose them.
Interfaces StyleSheet and Rule let clients inspect both kinds alike.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssobj.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssobj.cssom")
}
