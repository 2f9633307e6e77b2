package ewstest

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/getmockd/ews/pkg/ews"
)

// matcher evaluates restrictions against stored items. Each restriction is
// translated to an expr program over the item's field texts; programs are
// cached by source.
type matcher struct {
	mu       sync.RWMutex
	programs map[string]*vm.Program
}

func newMatcher() *matcher {
	return &matcher{programs: make(map[string]*vm.Program)}
}

// env is the evaluation environment. The function values are fixed so one
// compiled program serves every item. Names must not collide with expr
// operators such as contains, in or matches.
func env(fields map[string]any) map[string]any {
	return map[string]any{
		"fields":       fields,
		"compare":      compareField,
		"containsText": containsField,
	}
}

func (m *matcher) compile(source string) (*vm.Program, error) {
	m.mu.RLock()
	if program, ok := m.programs[source]; ok {
		m.mu.RUnlock()
		return program, nil
	}
	m.mu.RUnlock()

	program, err := expr.Compile(source, expr.Env(env(nil)), expr.AsBool())
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.programs[source]; ok {
		return existing, nil
	}
	m.programs[source] = program
	return program, nil
}

func (m *matcher) cached() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.programs)
}

// match reports whether item satisfies program.
func match(program *vm.Program, item *etree.Element) (bool, error) {
	out, err := expr.Run(program, env(itemFields(item)))
	if err != nil {
		return false, err
	}
	b, _ := out.(bool)
	return b, nil
}

// itemFields maps the property path URI of every child of item to its text.
func itemFields(item *etree.Element) map[string]any {
	kind := ews.ItemKind(item.Tag)
	fields := make(map[string]any)
	for _, c := range item.ChildElements() {
		p, ok := ews.PathOf(kind, c.Tag)
		if !ok {
			continue
		}
		fields[p.URI] = strings.TrimSpace(c.Text())
	}
	return fields
}

// exprSource renders r as an expr expression.
func exprSource(r ews.Restriction) (string, error) {
	switch n := r.(type) {
	case ews.Comparison:
		return fmt.Sprintf("compare(fields[%s], %s, %s)",
			strconv.Quote(n.Path.URI), strconv.Quote(string(n.Op)), strconv.Quote(n.Value)), nil
	case ews.Contains:
		return fmt.Sprintf("containsText(fields[%s], %s, %s, %s)",
			strconv.Quote(n.Path.URI), strconv.Quote(string(n.Mode)),
			strconv.Quote(string(n.Comparison)), strconv.Quote(n.Value)), nil
	case ews.Exists:
		return fmt.Sprintf("(%s in fields)", strconv.Quote(n.Path.URI)), nil
	case ews.And:
		return joinSources(n.Children, " && ", "true")
	case ews.Or:
		return joinSources(n.Children, " || ", "false")
	case ews.Not:
		inner, err := exprSource(n.Child)
		if err != nil {
			return "", err
		}
		return "!(" + inner + ")", nil
	}
	return "", fmt.Errorf("unsupported restriction %T", r)
}

func joinSources(children []ews.Restriction, op, empty string) (string, error) {
	if len(children) == 0 {
		return empty, nil
	}
	parts := make([]string, len(children))
	for i, c := range children {
		s, err := exprSource(c)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, op) + ")", nil
}

// compareField compares a field text with a constant, typed by what both
// parse as: timestamps, then integers, then booleans, then strings. Unset
// fields match nothing.
func compareField(value any, op, constant string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	var c int
	if a, err := ews.ParseDateTime(s); err == nil {
		b, err := ews.ParseDateTime(constant)
		if err != nil {
			return false
		}
		c = a.Time().Compare(b.Time())
	} else if a, err := strconv.Atoi(s); err == nil {
		b, err := strconv.Atoi(constant)
		if err != nil {
			return false
		}
		c = cmpInt(a, b)
	} else if a, err := strconv.ParseBool(s); err == nil {
		b, err := strconv.ParseBool(constant)
		if err != nil {
			return false
		}
		switch ews.ComparisonOp(op) {
		case ews.OpIsEqualTo:
			return a == b
		case ews.OpIsNotEqualTo:
			return a != b
		}
		return false
	} else {
		c = strings.Compare(s, constant)
	}

	switch ews.ComparisonOp(op) {
	case ews.OpIsEqualTo:
		return c == 0
	case ews.OpIsNotEqualTo:
		return c != 0
	case ews.OpIsGreaterThan:
		return c > 0
	case ews.OpIsGreaterThanOrEqualTo:
		return c >= 0
	case ews.OpIsLessThan:
		return c < 0
	case ews.OpIsLessThanOrEqualTo:
		return c <= 0
	}
	return false
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func containsField(value any, mode, comparison, constant string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if ews.ContainmentComparison(comparison) != ews.CompareExact {
		s, constant = strings.ToLower(s), strings.ToLower(constant)
	}
	switch ews.ContainmentMode(mode) {
	case ews.ContainFullString:
		return s == constant
	case ews.ContainPrefixed:
		return strings.HasPrefix(s, constant)
	case ews.ContainPrefixOnWords:
		for _, w := range strings.Fields(s) {
			if strings.HasPrefix(w, constant) {
				return true
			}
		}
		return false
	default:
		return strings.Contains(s, constant)
	}
}
