package jss

import (
	"strings"

	"github.com/npillmayer/cssobj/cssom"
	"github.com/npillmayer/cssobj/style"
)

// RuleDecl is the declaration of a style rule, as written by a client.
type RuleDecl struct {
	Name    string       // key of the rule, unique within a sheet
	Style   *style.Block // declarations, including plugin directives
	Unnamed bool         // if set, Name is used verbatim as the selector
}

// Decl is a shortcut to create a named rule declaration.
func Decl(name string, decls ...style.KeyValue) RuleDecl {
	return RuleDecl{Name: name, Style: style.NewBlock(decls...)}
}

// Container owns a set of rules and keeps a mapping from rule names to
// their current class lists.
type Container interface {
	Classes() map[string]string
	SetClass(name, className string)
}

// Options are the read-only options of a rule.
type Options struct {
	Named  bool      // named rules get a generated class name
	Parent Container // owner of the rule's class-list entry
	Sheet  *Sheet    // sheet the rule is declared in
}

// Rule is a single style block of a sheet.
type Rule struct {
	name      string
	style     *style.Block
	className string
	selector  string
	refs      []string // rules composed by reference, in order
	options   Options
}

// Name returns the key the rule has been declared with.
func (r *Rule) Name() string {
	return r.name
}

// Named is true for rules with a generated class name.
func (r *Rule) Named() bool {
	return r.options.Named
}

// Options returns the rule's options.
func (r *Rule) Options() Options {
	return r.options
}

// Style returns the declaration block of the rule. Plugins may modify it.
func (r *Rule) Style() *style.Block {
	return r.style
}

// ClassName returns the space separated class list of the rule. It starts
// with the rule's own generated class name. Unnamed rules have no class name.
func (r *Rule) ClassName() string {
	return r.className
}

// AppendClassName appends a class token to the rule's class list and
// synchronizes the container's class mapping.
func (r *Rule) AppendClassName(token string) {
	if r.className == "" {
		r.className = token
	} else {
		r.className += " " + token
	}
	if r.options.Named && r.options.Parent != nil {
		r.options.Parent.SetClass(r.name, r.className)
	}
}

// ClassNameOf looks up a rule of the owning sheet by name and returns its
// current class list.
func (r *Rule) ClassNameOf(name string) (string, bool) {
	if r.options.Sheet == nil {
		return "", false
	}
	ref := r.options.Sheet.GetRule(name)
	if ref == nil {
		return "", false
	}
	return ref.ClassName(), true
}

// AddReference records that the rule has composed the rule declared
// with name.
func (r *Rule) AddReference(name string) {
	for _, n := range r.refs {
		if n == name {
			return
		}
	}
	r.refs = append(r.refs, name)
}

// References returns the names of the rules this rule has composed by
// reference.
func (r *Rule) References() []string {
	refs := make([]string, len(r.refs))
	copy(refs, r.refs)
	return refs
}

// ReferencesOf returns the references recorded for the rule of the owning
// sheet declared with name.
func (r *Rule) ReferencesOf(name string) []string {
	if r.options.Sheet == nil {
		return nil
	}
	if ref := r.options.Sheet.GetRule(name); ref != nil {
		return ref.References()
	}
	return nil
}

// Selector returns the CSS selector of the rule: ".<own class>" for named
// rules, the declared name otherwise.
//
// Interface cssom.Rule
func (r *Rule) Selector() string {
	return r.selector
}

// Properties returns the keys of the rule's declarations.
//
// Interface cssom.Rule
func (r *Rule) Properties() []string {
	return r.style.Keys()
}

// Value returns the CSS text of a declaration.
//
// Interface cssom.Rule
func (r *Rule) Value(key string) style.Property {
	v, ok := r.style.Get(key)
	if !ok {
		return style.NullStyle
	}
	p, _ := style.ToProperty(v)
	return p
}

// IsImportant returns true if a value is flagged with "!important".
//
// Interface cssom.Rule
func (r *Rule) IsImportant(key string) bool {
	return strings.HasSuffix(strings.TrimSpace(r.Value(key).String()), "!important")
}

var _ cssom.Rule = &Rule{}

// String returns the CSS text of the rule. Rules without declarations
// render as the empty string.
func (r *Rule) String() string {
	var sb strings.Builder
	writeRule(&sb, r)
	return sb.String()
}
