package jss

import "github.com/npillmayer/cssobj/style"

// Plugin is a set of hooks into the rule pipeline of an engine. Hooks
// left nil are skipped.
type Plugin struct {
	Name          string      // for tracing only
	OnCreateRule  func(*Rule) // called once a rule has been created
	OnProcessRule func(*Rule) // called in declaration order after all rules exist
}

// Engine creates style sheets, running every rule through its plugins.
type Engine struct {
	plugins []Plugin
	namer   ClassNamer
	prefix  string
}

// Option configures an engine.
type Option func(*Engine)

// WithClassNamer sets the generator for class names of named rules.
// The default is HashedClassNames().
func WithClassNamer(namer ClassNamer) Option {
	return func(e *Engine) {
		e.namer = namer
	}
}

// WithClassPrefix prepends a prefix to every generated class name.
func WithClassPrefix(prefix string) Option {
	return func(e *Engine) {
		e.prefix = prefix
	}
}

// New creates an engine without plugins.
func New(opts ...Option) *Engine {
	e := &Engine{namer: HashedClassNames()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Use registers plugins. Hooks are called in order of registration.
func (e *Engine) Use(plugins ...Plugin) *Engine {
	e.plugins = append(e.plugins, plugins...)
	return e
}

// SheetOption configures a single style sheet.
type SheetOption func(*sheetOptions)

type sheetOptions struct {
	unnamed bool
}

// Unnamed makes every rule of a sheet unnamed, i.e. rule names are used
// verbatim as selectors.
func Unnamed() SheetOption {
	return func(o *sheetOptions) {
		o.unnamed = true
	}
}

// CreateStyleSheet builds a sheet from rule declarations. The order of
// decls is the declaration order of the sheet. A rule name declared twice
// is ignored on its second occurence.
//
// The declaration blocks are copied; decls remain untouched by plugins.
func (e *Engine) CreateStyleSheet(decls []RuleDecl, opts ...SheetOption) *Sheet {
	sheet := newSheet()
	for _, opt := range opts {
		opt(&sheet.options)
	}
	for _, decl := range decls {
		if sheet.index[decl.Name] != nil {
			tracer().Errorf("jss: rule %q declared twice, ignoring redeclaration", decl.Name)
			continue
		}
		rule := e.createRule(decl, sheet)
		sheet.add(rule)
		for _, p := range e.plugins {
			if p.OnCreateRule != nil {
				p.OnCreateRule(rule)
			}
		}
	}
	for _, rule := range sheet.rules {
		for _, p := range e.plugins {
			if p.OnProcessRule != nil {
				tracer().Debugf("jss: plugin %s processes rule %q", p.Name, rule.name)
				p.OnProcessRule(rule)
			}
		}
	}
	return sheet
}

func (e *Engine) createRule(decl RuleDecl, sheet *Sheet) *Rule {
	named := !decl.Unnamed && !sheet.options.unnamed
	rule := &Rule{
		name:  decl.Name,
		style: style.NewBlock(decl.Style.Declarations()...),
		options: Options{
			Named:  named,
			Parent: sheet,
			Sheet:  sheet,
		},
	}
	if named {
		rule.className = e.prefix + e.namer.ClassName(decl)
		rule.selector = "." + rule.className
	} else {
		rule.selector = decl.Name
	}
	tracer().Debugf("jss: created rule %q with selector %s", rule.name, rule.selector)
	return rule
}
