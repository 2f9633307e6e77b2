package ewstest

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/getmockd/ews/pkg/ews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareField(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		op       ews.ComparisonOp
		constant string
		want     bool
	}{
		{"unset never matches", nil, ews.OpIsNotEqualTo, "x", false},
		{"string equal", "abc", ews.OpIsEqualTo, "abc", true},
		{"string order", "abc", ews.OpIsLessThan, "abd", true},
		{"int order", "9", ews.OpIsLessThan, "10", true},
		{"int vs text", "9", ews.OpIsEqualTo, "nine", false},
		{"bool equal", "false", ews.OpIsEqualTo, "false", true},
		{"bool not equal", "true", ews.OpIsNotEqualTo, "false", true},
		{"bool has no order", "true", ews.OpIsGreaterThan, "false", false},
		{"time after", "2015-01-17T12:30:00Z", ews.OpIsGreaterThan, "2015-01-17T12:00:00Z", true},
		{"time equal", "2015-01-17T12:00:00Z", ews.OpIsGreaterThanOrEqualTo, "2015-01-17T12:00:00Z", true},
		{"time vs text", "2015-01-17T12:00:00Z", ews.OpIsEqualTo, "soon", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareField(tt.value, string(tt.op), tt.constant))
		})
	}
}

func TestContainsField(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		mode       ews.ContainmentMode
		comparison ews.ContainmentComparison
		constant   string
		want       bool
	}{
		{"substring ignore case", "Write Poem", ews.ContainSubstring, ews.CompareIgnoreCase, "POEM", true},
		{"substring exact", "Write Poem", ews.ContainSubstring, ews.CompareExact, "poem", false},
		{"prefix", "Write Poem", ews.ContainPrefixed, ews.CompareExact, "Write", true},
		{"prefix miss", "Write Poem", ews.ContainPrefixed, ews.CompareExact, "Poem", false},
		{"full string", "Write Poem", ews.ContainFullString, ews.CompareLoose, "write poem", true},
		{"prefix on words", "Write Poem", ews.ContainPrefixOnWords, ews.CompareExact, "Po", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsField(tt.value, string(tt.mode), string(tt.comparison), tt.constant))
		})
	}
}

func TestExprSource(t *testing.T) {
	r := ews.AndOf(
		ews.IsEqualTo(ews.TaskPath.IsComplete, false),
		ews.NotOf(ews.FieldExists(ews.TaskPath.Mileage)),
		ews.OrOf(),
	)
	src, err := exprSource(r)
	require.NoError(t, err)
	assert.Equal(t,
		`(compare(fields["task:IsComplete"], "IsEqualTo", "false") && !(("task:Mileage" in fields)) && false)`,
		src)
}

func TestMatch(t *testing.T) {
	item := etree.NewElement("t:Task")
	item.CreateElement("t:Subject").SetText("Write poem")
	item.CreateElement("t:IsComplete").SetText("false")

	m := newMatcher()
	tests := []struct {
		name string
		r    ews.Restriction
		want bool
	}{
		{"equal", ews.IsEqualTo(ews.TaskPath.IsComplete, false), true},
		{"contains", ews.ContainsSubstring(ews.ItemPath.Subject, "POEM"), true},
		{"exists", ews.FieldExists(ews.TaskPath.StartDate), false},
		{"not", ews.NotOf(ews.FieldExists(ews.TaskPath.StartDate)), true},
		{"or", ews.OrOf(ews.IsEqualTo(ews.ItemPath.Subject, "nope"), ews.StartsWith(ews.ItemPath.Subject, "write")), true},
		{"and", ews.AndOf(ews.IsEqualTo(ews.ItemPath.Subject, "nope"), ews.StartsWith(ews.ItemPath.Subject, "write")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := exprSource(tt.r)
			require.NoError(t, err)
			program, err := m.compile(src)
			require.NoError(t, err)
			got, err := match(program, item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsCompilesForEveryMode(t *testing.T) {
	m := newMatcher()
	for _, mode := range []ews.ContainmentMode{ews.ContainFullString, ews.ContainPrefixed, ews.ContainSubstring, ews.ContainPrefixOnWords} {
		t.Run(string(mode), func(t *testing.T) {
			r := ews.Contains{Path: ews.ItemPath.Subject, Value: "poem", Mode: mode, Comparison: ews.CompareIgnoreCase}
			src, err := exprSource(r)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(src, "containsText("), src)
			_, err = m.compile(src)
			require.NoError(t, err)
		})
	}
}

func TestMatchReportsEvaluationErrors(t *testing.T) {
	program, err := newMatcher().compile(`fields["item:Subject"] > 1`)
	require.NoError(t, err)

	got, err := match(program, etree.NewElement("t:Task"))
	require.Error(t, err)
	assert.False(t, got)
}

func TestItemFieldsUsesVariantPaths(t *testing.T) {
	item := etree.NewElement("t:Contact")
	item.CreateElement("t:Subject").SetText("s")
	item.CreateElement("t:Mileage").SetText("10")
	item.CreateElement("t:Unknown").SetText("ignored")

	fields := itemFields(item)
	assert.Equal(t, map[string]any{"item:Subject": "s", "contacts:Mileage": "10"}, fields)
}
