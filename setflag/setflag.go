// Package setflag is a flag.Value holding a set of values chosen from a
// fixed list of options.
package setflag

import (
	"fmt"
	"sort"
	"strings"
)

func New(options ...string) *SetFlag {
	sf := &SetFlag{
		values:  make(map[string]struct{}, len(options)),
		options: make(map[string]struct{}, len(options)),
	}
	for _, opt := range options {
		sf.options[opt] = struct{}{}
	}
	return sf
}

type SetFlag struct {
	options map[string]struct{}
	values  map[string]struct{}
}

// List returns the chosen values in sorted order.
func (sf *SetFlag) List() []string {
	values := make([]string, 0, len(sf.values))
	for k := range sf.values {
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}

// Options returns every allowed value in sorted order.
func (sf *SetFlag) Options() []string {
	options := make([]string, 0, len(sf.options))
	for k := range sf.options {
		options = append(options, k)
	}
	sort.Strings(options)
	return options
}

func (sf *SetFlag) Has(value string) bool {
	_, ok := sf.values[value]
	return ok
}

// Empty reports whether nothing was chosen.
func (sf *SetFlag) Empty() bool {
	return len(sf.values) == 0
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.List(), ",")
}

func (sf *SetFlag) Set(value string) error {
	for _, value := range strings.Split(value, ",") {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		if _, exists := sf.options[value]; !exists {
			return fmt.Errorf("unsupported value '%s' (want one of %s)", value, strings.Join(sf.Options(), ", "))
		}
		sf.values[value] = struct{}{}
	}
	return nil
}
