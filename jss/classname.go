package jss

import (
	"encoding/binary"
	"strconv"

	"github.com/zeebo/blake3"
)

// ClassNamer generates the class name of a named rule.
type ClassNamer interface {
	ClassName(decl RuleDecl) string
}

// ClassNamerFunc adapts a function to interface ClassNamer.
type ClassNamerFunc func(RuleDecl) string

// ClassName calls f(decl).
func (f ClassNamerFunc) ClassName(decl RuleDecl) string {
	return f(decl)
}

// HashedClassNames generates class names of the form "<name>-<n>", where n
// is derived from a BLAKE3 digest of the rule's name and declarations.
// Equal declarations yield equal class names across engines and runs.
func HashedClassNames() ClassNamer {
	return ClassNamerFunc(func(decl RuleDecl) string {
		sum := blake3.Sum256([]byte(decl.Name + "\x00" + decl.Style.String()))
		n := binary.BigEndian.Uint32(sum[:4])
		return decl.Name + "-" + strconv.FormatUint(uint64(n), 10)
	})
}

// CountedClassNames generates class names of the form "<name>-<n>", where n
// counts the rules named by this generator, starting at 1.
func CountedClassNames() ClassNamer {
	counter := 0
	return ClassNamerFunc(func(decl RuleDecl) string {
		counter++
		return decl.Name + "-" + strconv.Itoa(counter)
	})
}
