package cssom

import (
	"strings"

	"github.com/npillmayer/cssobj/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter or type jss.Sheet).
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// ClassNames collects every class name used in a selector of a stylesheet,
// in order of first appearance.
//
//	.btn, .btn:hover > .icon   =>   btn, icon
func ClassNames(sheet StyleSheet) []string {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, r := range sheet.Rules() {
		for _, c := range SelectorClasses(r.Selector()) {
			if !seen[c] {
				seen[c] = true
				names = append(names, c)
			}
		}
	}
	tracer().Debugf("cssom: found %d class names", len(names))
	return names
}

// SelectorClasses extracts the class names from a selector text.
func SelectorClasses(selector string) []string {
	var classes []string
	for i := 0; i < len(selector); i++ {
		if selector[i] != '.' {
			continue
		}
		j := i + 1
		for j < len(selector) && isNameChar(selector[j]) {
			if selector[j] == '\\' && j+1 < len(selector) {
				j++
			}
			j++
		}
		if j > i+1 {
			classes = append(classes, unescape(selector[i+1:j]))
		}
		i = j - 1
	}
	return classes
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' || c == '\\' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
