package style

import (
	"fmt"
	"strings"
)

// Block is an ordered set of style declarations. Keys are unique within
// a block; setting an existing key replaces its value in place, keeping
// the position of the original declaration.
//
// The zero value is an empty block ready to use.
type Block struct {
	decls []KeyValue
	index map[string]int
}

// NewBlock creates a block from a list of declarations. Later duplicates
// of a key overwrite earlier ones.
func NewBlock(decls ...KeyValue) *Block {
	b := &Block{}
	for _, d := range decls {
		b.Set(d.Key, d.Value)
	}
	return b
}

// Len returns the number of declarations.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.decls)
}

// Get returns the value declared for key.
func (b *Block) Get(key string) (any, bool) {
	if b == nil || b.index == nil {
		return nil, false
	}
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}
	return b.decls[i].Value, true
}

// Has is a predicate wether key is declared.
func (b *Block) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Set declares a value for key.
func (b *Block) Set(key string, value any) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[key]; ok {
		b.decls[i].Value = value
		return
	}
	b.index[key] = len(b.decls)
	b.decls = append(b.decls, KeyValue{Key: key, Value: value})
}

// Delete removes the declaration for key. It returns false if key has not
// been declared.
func (b *Block) Delete(key string) bool {
	if b == nil || b.index == nil {
		return false
	}
	i, ok := b.index[key]
	if !ok {
		return false
	}
	b.decls = append(b.decls[:i], b.decls[i+1:]...)
	delete(b.index, key)
	for j := i; j < len(b.decls); j++ {
		b.index[b.decls[j].Key] = j
	}
	return true
}

// Declarations returns a copy of all declarations in declaration order.
func (b *Block) Declarations() []KeyValue {
	if b == nil {
		return nil
	}
	d := make([]KeyValue, len(b.decls))
	copy(d, b.decls)
	return d
}

// Keys returns the declared keys in declaration order.
func (b *Block) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, len(b.decls))
	for i, d := range b.decls {
		keys[i] = d.Key
	}
	return keys
}

// Stringer for blocks; used for debugging.
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, d := range b.Declarations() {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %v", d.Key, d.Value)
	}
	sb.WriteString("}")
	return sb.String()
}
