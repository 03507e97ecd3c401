/*
Package loader reads CSS-object style documents.

A style document maps rule names to declaration blocks, in declaration
order:

	a:
	  float: left
	b:
	  composes: [$a, clearfix]
	  color: red
	"@global body":
	  margin: 0

Keys prefixed by "@global " declare unnamed rules; the rest of the key is
used as the rule's selector. Documents may be written in YAML, JSON, or
JSON with comments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/cssobj/jss"
	"github.com/npillmayer/cssobj/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'cssobj.loader'.
func tracer() tracing.Trace {
	return tracing.Select("cssobj.loader")
}

// Format is the syntax of a style document.
type Format int

// Supported formats.
const (
	YAML Format = iota
	JSON
	JSONC
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case JSONC:
		return "jsonc"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// GlobalPrefix marks keys of unnamed rules.
const GlobalPrefix = "@global "

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// FormatFromPath determines the format of a document from its file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".jsonc":
		return JSONC, nil
	}
	return YAML, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads a style document from a file.
func Load(path string) ([]jss.RuleDecl, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decls, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}

// Parse reads a style document. The rule declarations are returned in
// document order.
func Parse(data []byte, format Format) ([]jss.RuleDecl, error) {
	if format == JSONC {
		data = jsonc.ToJSON(data)
	}
	// JSON documents are valid YAML; yaml.Node keeps the order of keys.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", format, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: style document must be a mapping of rule names", root.Line)
	}
	var decls []jss.RuleDecl
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, body := root.Content[i], resolveAlias(root.Content[i+1])
		decl, err := ruleDecl(key.Value, body)
		if err != nil {
			return nil, fmt.Errorf("line %d: rule %q: %w", key.Line, key.Value, err)
		}
		if seen[decl.Name] {
			return nil, fmt.Errorf("line %d: rule %q declared twice", key.Line, key.Value)
		}
		seen[decl.Name] = true
		decls = append(decls, decl)
	}
	tracer().Debugf("loader: read %d rules from %s document", len(decls), format)
	return decls, nil
}

func ruleDecl(key string, body *yaml.Node) (jss.RuleDecl, error) {
	decl := jss.RuleDecl{Name: key, Style: &style.Block{}}
	if strings.HasPrefix(key, GlobalPrefix) {
		decl.Name = strings.TrimSpace(strings.TrimPrefix(key, GlobalPrefix))
		decl.Unnamed = true
	}
	if decl.Name == "" {
		return decl, errors.New("empty rule name")
	}
	if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
		return decl, nil
	}
	if body.Kind != yaml.MappingNode {
		return decl, errors.New("rule body must be a mapping of properties")
	}
	for i := 0; i+1 < len(body.Content); i += 2 {
		prop := body.Content[i]
		v, err := value(body.Content[i+1])
		if err != nil {
			return decl, fmt.Errorf("property %q: %w", prop.Value, err)
		}
		decl.Style.Set(prop.Value, v)
	}
	return decl, nil
}

func value(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := value(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		return nil, fmt.Errorf("line %d: nested blocks are not supported", n.Line)
	}
	return nil, fmt.Errorf("line %d: unexpected node", n.Line)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
