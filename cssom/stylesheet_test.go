package cssom_test

import (
	"testing"

	"github.com/npillmayer/cssobj/cssom"
	"github.com/stretchr/testify/assert"
)

func TestSelectorClasses(t *testing.T) {
	assert.Equal(t, []string{"btn"}, cssom.SelectorClasses(".btn"))
	assert.Equal(t, []string{"btn", "icon"}, cssom.SelectorClasses(".btn:hover > .icon"))
	assert.Equal(t, []string{"a-1", "b_2"}, cssom.SelectorClasses("div.a-1 .b_2::after"))
	assert.Equal(t, []string{"md:p-4"}, cssom.SelectorClasses(`.md\:p-4`))
	assert.Empty(t, cssom.SelectorClasses("body > p"))
	assert.Empty(t, cssom.SelectorClasses("p."))
}
