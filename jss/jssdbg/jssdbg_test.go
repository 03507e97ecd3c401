package jssdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cssobj/compose"
	"github.com/npillmayer/cssobj/jss"
	"github.com/npillmayer/cssobj/jss/jssdbg"
	"github.com/npillmayer/cssobj/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssobj.jss")
	defer teardown()
	//
	sheet := jss.New(jss.WithClassNamer(jss.CountedClassNames())).
		Use(compose.New().Plugin()).
		CreateStyleSheet([]jss.RuleDecl{
			jss.Decl("a", style.KeyValue{Key: "float", Value: "left"}),
			jss.Decl("b", style.KeyValue{Key: "composes", Value: "$a clearfix typo"}),
			{Name: "body", Style: style.NewBlock(), Unnamed: true},
		})
	var buf bytes.Buffer
	known := jssdbg.KnownClasses([]string{"clearfix"})
	if err := jssdbg.Print(&buf, sheet, known); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	for _, line := range []string{
		"[own]", "a-1",
		"[rule a]", "[global]", "clearfix",
		"[global unknown]", "typo",
		"[unnamed]", "body",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected class tree to contain %q, doesn't", line)
		}
	}
	if strings.Contains(out, "[global unknown]  clearfix") {
		t.Error("expected clearfix to be a known global class")
	}
}

func TestTreeWithoutKnownClasses(t *testing.T) {
	sheet := jss.New().Use(compose.New().Plugin()).CreateStyleSheet([]jss.RuleDecl{
		jss.Decl("a", style.KeyValue{Key: "composes", Value: "x"}),
	})
	out := jssdbg.Tree(sheet, nil).String()
	if strings.Contains(out, "unknown") {
		t.Errorf("expected no unknown classes without a set of known classes, have\n%s", out)
	}
}
