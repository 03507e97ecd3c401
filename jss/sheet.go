package jss

import (
	"strings"

	"github.com/npillmayer/cssobj/cssom"
	"github.com/npillmayer/cssobj/style"
)

// Sheet is a set of rules declared together. It is the container for
// the class lists of its named rules.
type Sheet struct {
	rules   []*Rule
	index   map[string]*Rule
	classes map[string]string
	options sheetOptions
}

func newSheet() *Sheet {
	return &Sheet{
		index:   make(map[string]*Rule),
		classes: make(map[string]string),
	}
}

func (s *Sheet) add(rule *Rule) {
	s.rules = append(s.rules, rule)
	s.index[rule.name] = rule
	if rule.options.Named {
		s.classes[rule.name] = rule.className
	}
}

// GetRule returns the rule declared with name, or nil.
func (s *Sheet) GetRule(name string) *Rule {
	return s.index[name]
}

// Class returns the current class list of a named rule.
func (s *Sheet) Class(name string) string {
	return s.classes[name]
}

// Classes returns a copy of the mapping from rule names to class lists.
//
// Interface Container
func (s *Sheet) Classes() map[string]string {
	c := make(map[string]string, len(s.classes))
	for k, v := range s.classes {
		c[k] = v
	}
	return c
}

// SetClass records the class list for a rule name.
//
// Interface Container
func (s *Sheet) SetClass(name, className string) {
	s.classes[name] = className
}

// RuleList returns the rules in declaration order.
func (s *Sheet) RuleList() []*Rule {
	r := make([]*Rule, len(s.rules))
	copy(r, s.rules)
	return r
}

// Empty checks if the sheet contains any rules.
//
// Interface cssom.StyleSheet
func (s *Sheet) Empty() bool {
	return len(s.rules) == 0
}

// Rules returns the rules in declaration order.
//
// Interface cssom.StyleSheet
func (s *Sheet) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(s.rules))
	for i, r := range s.rules {
		rules[i] = r
	}
	return rules
}

var _ cssom.StyleSheet = &Sheet{}
var _ Container = &Sheet{}

// String renders the sheet as CSS. Rules without declarations are skipped.
func (s *Sheet) String() string {
	var sb strings.Builder
	for _, r := range s.rules {
		if r.style.Len() == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		writeRule(&sb, r)
	}
	return sb.String()
}

func writeRule(sb *strings.Builder, r *Rule) {
	if r.style.Len() == 0 {
		return
	}
	sb.WriteString(r.selector)
	sb.WriteString(" {\n")
	for _, d := range r.style.Declarations() {
		p, ok := style.ToProperty(d.Value)
		if !ok {
			tracer().Errorf("jss: rule %q: cannot render value of %s", r.name, d.Key)
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(d.Key)
		sb.WriteString(": ")
		sb.WriteString(p.String())
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
}
