/*
Package jssdbg implements helpers to debug CSS-object style sheets.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jssdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cssobj/jss"
	tp "github.com/xlab/treeprint"
)

// Labels for class tokens.
const (
	LabelOwn     = "own"
	LabelRule    = "rule"
	LabelGlobal  = "global"
	LabelUnknown = "unknown"
	LabelUnnamed = "unnamed"
)

// ownClass returns the generated class name of a named rule.
func ownClass(r *jss.Rule) string {
	return strings.TrimPrefix(r.Selector(), ".")
}

// Tree creates a tree of the class lists of all rules of a sheet:
//
//	.
//	├── [a] .a-1
//	│   └── [own] a-1
//	└── [b] .b-2
//	    ├── [own] b-2
//	    ├── [rule a] a-1
//	    └── [global] clearfix
//
// Tokens are labelled as the rule's own class, the class of another rule of
// the sheet, or a global class. If known is non-nil, global classes missing
// from known are labelled "global unknown".
func Tree(sheet *jss.Sheet, known map[string]bool) tp.Tree {
	owner := make(map[string]string)
	for _, r := range sheet.RuleList() {
		if r.Named() {
			owner[ownClass(r)] = r.Name()
		}
	}
	root := tp.New()
	for _, r := range sheet.RuleList() {
		if !r.Named() {
			root.AddMetaNode(LabelUnnamed, r.Selector())
			continue
		}
		branch := root.AddMetaBranch(r.Name(), r.Selector())
		own := ownClass(r)
		for _, token := range strings.Fields(r.ClassName()) {
			switch name, isRule := owner[token]; {
			case token == own:
				branch.AddMetaNode(LabelOwn, token)
			case isRule:
				branch.AddMetaNode(LabelRule+" "+name, token)
			case known != nil && !known[token]:
				branch.AddMetaNode(LabelGlobal+" "+LabelUnknown, token)
			default:
				branch.AddMetaNode(LabelGlobal, token)
			}
		}
	}
	return root
}

// Print writes the class tree of a sheet to w.
func Print(w io.Writer, sheet *jss.Sheet, known map[string]bool) error {
	_, err := fmt.Fprint(w, Tree(sheet, known).String())
	return err
}

// KnownClasses creates a set of class names, suitable for Tree.
func KnownClasses(names ...[]string) map[string]bool {
	known := make(map[string]bool)
	for _, list := range names {
		for _, n := range list {
			known[n] = true
		}
	}
	return known
}
