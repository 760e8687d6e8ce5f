// Package setflag implements a comma-separated flag.Value restricted to a
// fixed set of options, like -views scatter,heatmap.
package setflag

import (
	"fmt"
	"strings"
)

func New(options ...string) *SetFlag {
	sf := &SetFlag{
		options: options,
		values:  make(map[string]struct{}, len(options)),
	}
	return sf
}

type SetFlag struct {
	options []string
	values  map[string]struct{}
}

// List returns the chosen values in the order the options were declared, so
// output is deterministic.
func (sf *SetFlag) List() []string {
	var values []string
	for _, opt := range sf.options {
		if _, has := sf.values[opt]; has {
			values = append(values, opt)
		}
	}
	return values
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.List(), ", ")
}

func (sf *SetFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if !sf.supports(v) {
			return fmt.Errorf("unsupported value '%s'", v)
		}
		sf.values[v] = struct{}{}
	}
	return nil
}

func (sf *SetFlag) supports(value string) bool {
	for _, opt := range sf.options {
		if opt == value {
			return true
		}
	}
	return false
}
