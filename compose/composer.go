package compose

import (
	"strings"

	"github.com/npillmayer/cssobj/jss"
	"github.com/npillmayer/cssobj/style"
	"go.uber.org/zap"
)

// Rule is what the composer needs from a host rule. *jss.Rule implements it.
type Rule interface {
	Name() string                           // key of the rule within its sheet
	Named() bool                            // only named rules compose
	Style() *style.Block                    // declarations, holding the directive
	ClassName() string                      // current class list
	AppendClassName(token string)           // append to the class list, sync the container
	ClassNameOf(name string) (string, bool) // class list of another rule of the sheet
	AddReference(name string)               // record a composition by reference
	ReferencesOf(name string) []string      // recorded references of another rule of the sheet
	String() string                         // CSS source, used in warnings
}

var _ Rule = &jss.Rule{}

// Composer resolves `composes` directives. It holds no state besides its
// configuration and may be shared between sheets.
type Composer struct {
	reporter Reporter
}

// Option configures a composer.
type Option func(*Composer)

// WithWarn sets a callback receiving formatted warning messages.
func WithWarn(warn func(message string)) Option {
	return func(c *Composer) {
		if warn != nil {
			c.reporter = WarnFunc(warn)
		}
	}
}

// WithReporter sets the receiver of warnings.
func WithReporter(r Reporter) Option {
	return func(c *Composer) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithLogger sends warnings to log, at warn level.
func WithLogger(log *zap.Logger) Option {
	return func(c *Composer) {
		if log != nil {
			c.reporter = NewLogReporter(log)
		}
	}
}

// New creates a composer. Without options, warnings are logged to stderr.
func New(opts ...Option) *Composer {
	c := &Composer{reporter: NewLogReporter(defaultLogger())}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Plugin returns the hook to register with a jss engine:
//
//	engine := jss.New().Use(compose.New().Plugin())
func (c *Composer) Plugin() jss.Plugin {
	return jss.Plugin{
		Name: "compose",
		OnProcessRule: func(r *jss.Rule) {
			c.OnProcessRule(r)
		},
	}
}

// OnProcessRule resolves the `composes` directive of rule, reporting
// failures to the composer's reporter.
func (c *Composer) OnProcessRule(rule Rule) {
	c.Process(rule, c.reporter)
}

// Process resolves the `composes` directive of rule and removes it from the
// rule's declarations. Unnamed rules never compose, their directive is
// dropped. Failing tokens are reported to r and skipped.
//
// Rules of a sheet have to be processed in declaration order.
func (c *Composer) Process(rule Rule, r Reporter) {
	if r == nil {
		r = NewLogReporter(defaultLogger())
	}
	st := rule.Style()
	if st == nil {
		return
	}
	value, ok := st.Get(style.Composes)
	if !ok {
		return
	}
	if rule.Named() {
		compose(rule, value, r)
	} else {
		tracer().Debugf("compose: rule %q is unnamed, dropping directive", rule.Name())
	}
	st.Delete(style.Composes)
}

func compose(rule Rule, value any, r Reporter) {
	tokens, valid := Flatten(value)
	if !valid {
		r.Warn(&Warning{Kind: InvalidDirective, Rule: rule.Name(), Source: rule.String()})
	}
	for _, token := range tokens {
		if !resolve(rule, token, r) {
			tracer().Debugf("compose: rule %q skips %q", rule.Name(), token)
		}
	}
	tracer().Debugf("compose: rule %q has classes %q", rule.Name(), rule.ClassName())
}

// resolve composes a single token into rule.
func resolve(rule Rule, token string, r Reporter) bool {
	if !strings.HasPrefix(token, "$") {
		rule.AppendClassName(token)
		return true
	}
	name := token[1:]
	classes, found := rule.ClassNameOf(name)
	if !found {
		r.Warn(&Warning{Kind: UnresolvedReference, Rule: rule.Name(), Ref: token, Source: rule.String()})
		return false
	}
	if reaches(rule, name, rule.Name()) {
		r.Warn(&Warning{Kind: SelfComposition, Rule: rule.Name(), Ref: token, Source: rule.String()})
		return false
	}
	for _, t := range strings.Fields(classes) {
		rule.AppendClassName(t)
	}
	rule.AddReference(name)
	return true
}

// reaches is true if target is from itself, or if following the recorded
// references starting at from arrives at target.
func reaches(rule Rule, from, target string) bool {
	seen := make(map[string]bool)
	stack := []string{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, rule.ReferencesOf(n)...)
	}
	return false
}

// Flatten normalizes a directive value into an ordered list of atomic
// tokens. Accepted shapes are strings (possibly holding several
// whitespace-separated tokens), style.Property and lists of any of these,
// nested to any depth. Empty values (including false) yield no tokens.
//
// Elements of any other type are skipped and flagged by a result of false;
// the tokens of all valid elements are returned nevertheless.
func Flatten(value any) ([]string, bool) {
	var tokens []string
	valid := flatten(value, &tokens)
	return tokens, valid
}

func flatten(value any, tokens *[]string) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		*tokens = append(*tokens, strings.Fields(v)...)
		return true
	case style.Property:
		*tokens = append(*tokens, strings.Fields(string(v))...)
		return true
	case []string:
		for _, s := range v {
			*tokens = append(*tokens, strings.Fields(s)...)
		}
		return true
	case []any:
		valid := true
		for _, x := range v {
			if !flatten(x, tokens) {
				valid = false
			}
		}
		return valid
	}
	return false
}
