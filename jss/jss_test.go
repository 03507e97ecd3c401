package jss_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssobj/jss"
	"github.com/npillmayer/cssobj/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kv(k string, v any) style.KeyValue {
	return style.KeyValue{Key: k, Value: v}
}

func TestCreateStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssobj.jss")
	defer teardown()
	//
	sheet := jss.New(jss.WithClassNamer(jss.CountedClassNames())).CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("a", kv("float", "left")),
		jss.Decl("b", kv("color", "red")),
	})
	require.NotNil(t, sheet.GetRule("a"))
	require.NotNil(t, sheet.GetRule("b"))
	assert.Nil(t, sheet.GetRule("c"))
	assert.Equal(t, "a-1", sheet.GetRule("a").ClassName())
	assert.Equal(t, "b-2", sheet.GetRule("b").ClassName())
	assert.Equal(t, ".b-2", sheet.GetRule("b").Selector())
	assert.Equal(t, map[string]string{"a": "a-1", "b": "b-2"}, sheet.Classes())
	assert.Equal(t, ".a-1 {\n  float: left;\n}\n.b-2 {\n  color: red;\n}", sheet.String())
}

func TestProcessingOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssobj.jss")
	defer teardown()
	//
	var created, processed []string
	recorder := jss.Plugin{
		Name: "recorder",
		OnCreateRule: func(r *jss.Rule) {
			created = append(created, r.Name())
		},
		OnProcessRule: func(r *jss.Rule) {
			// every rule exists before the first one is processed
			if len(processed) == 0 && len(created) != 3 {
				t.Errorf("expected all rules to be created before processing, have %v", created)
			}
			processed = append(processed, r.Name())
		},
	}
	jss.New().Use(recorder).CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("z"), jss.Decl("a"), jss.Decl("m"),
	})
	assert.Equal(t, []string{"z", "a", "m"}, created)
	assert.Equal(t, []string{"z", "a", "m"}, processed)
}

func TestAppendClassName(t *testing.T) {
	sheet := jss.New(jss.WithClassNamer(jss.CountedClassNames())).CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("a", kv("float", "left")),
	})
	a := sheet.GetRule("a")
	a.AppendClassName("foreign")
	assert.Equal(t, "a-1 foreign", a.ClassName())
	assert.Equal(t, "a-1 foreign", sheet.Class("a"))
	cn, ok := a.ClassNameOf("a")
	assert.True(t, ok)
	assert.Equal(t, "a-1 foreign", cn)
	_, ok = a.ClassNameOf("nope")
	assert.False(t, ok)
}

func TestReferences(t *testing.T) {
	sheet := jss.New().CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("a"), jss.Decl("b"),
	})
	b := sheet.GetRule("b")
	assert.Empty(t, b.References())
	b.AddReference("a")
	b.AddReference("a")
	assert.Equal(t, []string{"a"}, b.References())
	assert.Equal(t, []string{"a"}, sheet.GetRule("a").ReferencesOf("b"))
	assert.Nil(t, b.ReferencesOf("nope"))
}

func TestUnnamedRules(t *testing.T) {
	sheet := jss.New().CreateStyleSheet([]jss.RuleDecl{
		{Name: "body", Style: style.NewBlock(kv("margin", 0)), Unnamed: true},
		jss.Decl("a", kv("float", "left")),
	})
	body := sheet.GetRule("body")
	require.NotNil(t, body)
	assert.False(t, body.Named())
	assert.Equal(t, "body", body.Selector())
	assert.Equal(t, "", body.ClassName())
	_, listed := sheet.Classes()["body"]
	assert.False(t, listed)
	assert.True(t, sheet.GetRule("a").Named())
	//
	all := jss.New().CreateStyleSheet([]jss.RuleDecl{jss.Decl("p", kv("margin", 0))}, jss.Unnamed())
	assert.False(t, all.GetRule("p").Named())
	assert.Equal(t, "p {\n  margin: 0;\n}", all.String())
}

func TestHashedClassNames(t *testing.T) {
	decls := []jss.RuleDecl{
		jss.Decl("a", kv("float", "left")),
		jss.Decl("b", kv("color", "red")),
	}
	s1 := jss.New().CreateStyleSheet(decls)
	s2 := jss.New().CreateStyleSheet(decls)
	assert.Equal(t, s1.Classes(), s2.Classes())
	assert.True(t, strings.HasPrefix(s1.Class("a"), "a-"))
	s3 := jss.New().CreateStyleSheet([]jss.RuleDecl{jss.Decl("a", kv("float", "right"))})
	assert.NotEqual(t, s1.Class("a"), s3.Class("a"))
}

func TestClassPrefix(t *testing.T) {
	sheet := jss.New(
		jss.WithClassNamer(jss.CountedClassNames()),
		jss.WithClassPrefix("app-"),
	).CreateStyleSheet([]jss.RuleDecl{jss.Decl("a", kv("float", "left"))})
	assert.Equal(t, "app-a-1", sheet.Class("a"))
}

func TestDuplicateRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssobj.jss")
	defer teardown()
	//
	sheet := jss.New(jss.WithClassNamer(jss.CountedClassNames())).CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("a", kv("float", "left")),
		jss.Decl("a", kv("float", "right")),
	})
	assert.Len(t, sheet.RuleList(), 1)
	assert.Equal(t, style.Property("left"), sheet.GetRule("a").Value("float"))
}

func TestDeclarationsAreCopied(t *testing.T) {
	decl := jss.Decl("a", kv("float", "left"))
	sheet := jss.New().CreateStyleSheet([]jss.RuleDecl{decl})
	sheet.GetRule("a").Style().Delete("float")
	assert.True(t, decl.Style.Has("float"))
}

func TestRenderGolden(t *testing.T) {
	sheet := jss.New(jss.WithClassNamer(jss.CountedClassNames())).CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("button",
			kv("padding", []any{[]any{"4px", "8px"}}),
			kv("font-family", []any{"Helvetica", "sans-serif"}),
			kv("border", "none !important"),
		),
		jss.Decl("empty"),
		jss.Decl("label", kv("line-height", 1.5), kv("z-index", 3)),
	})
	assert.True(t, sheet.GetRule("button").IsImportant("border"))
	assert.False(t, sheet.GetRule("button").IsImportant("padding"))
	g := goldie.New(t)
	g.Assert(t, "render", []byte(sheet.String()))
}
