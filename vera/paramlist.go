package vera

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is one <Parameter name="..." type="..." value="..."/> entry.
type Param struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// ParamList is one <ParameterList name="..."> element: flat parameters
// plus nested lists.
type ParamList struct {
	Name   string      `xml:"name,attr"`
	Params []Param     `xml:"Parameter"`
	Lists  []ParamList `xml:"ParameterList"`
}

// List returns the nested list with the given name, matched without
// case, or nil.
func (l *ParamList) List(name string) *ParamList {
	for i := range l.Lists {
		if strings.EqualFold(l.Lists[i].Name, name) {
			return &l.Lists[i]
		}
	}

	return nil
}

// Param returns the named parameter, matched without case.
func (l *ParamList) Param(name string) (*Param, bool) {
	for i := range l.Params {
		if strings.EqualFold(l.Params[i].Name, name) {
			return &l.Params[i], true
		}
	}

	return nil, false
}

// Has reports whether the named parameter is present.
func (l *ParamList) Has(name string) bool {
	_, ok := l.Param(name)

	return ok
}

// Str returns the named parameter's raw value.
func (l *ParamList) Str(name string) (string, error) {
	p, ok := l.Param(name)
	if !ok {
		return "", fmt.Errorf("%w: %q in list %q", ErrMissingParam, name, l.Name)
	}

	return p.Value, nil
}

// StrOr returns the named parameter's value, or def when absent.
func (l *ParamList) StrOr(name, def string) string {
	if p, ok := l.Param(name); ok {
		return p.Value
	}

	return def
}

// Float returns the named parameter parsed as a float.
func (l *ParamList) Float(name string) (float64, error) {
	s, err := l.Str(name)
	if err != nil {
		return 0, err
	}

	return parseFloat(name, s)
}

// FloatOr returns the named parameter parsed as a float, or def when
// absent.
func (l *ParamList) FloatOr(name string, def float64) (float64, error) {
	if !l.Has(name) {
		return def, nil
	}

	return l.Float(name)
}

// Int returns the named parameter parsed as an integer.
func (l *ParamList) Int(name string) (int, error) {
	s, err := l.Str(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q = %q", ErrBadValue, name, s)
	}

	return v, nil
}

// Strings returns the named parameter split as a brace list:
// "{a, b, c}" becomes ["a" "b" "c"].
func (l *ParamList) Strings(name string) ([]string, error) {
	s, err := l.Str(name)
	if err != nil {
		return nil, err
	}

	return braceList(s), nil
}

// Floats returns the named parameter parsed as a brace list of floats.
func (l *ParamList) Floats(name string) ([]float64, error) {
	items, err := l.Strings(name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(items))
	for i, item := range items {
		v, err := parseFloat(name, item)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	return vals, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q = %q", ErrBadValue, name, s)
	}

	return v, nil
}

// braceList splits "{a,b}" or "a,b" into trimmed tokens. An empty value
// gives an empty list.
func braceList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}

	return out
}
