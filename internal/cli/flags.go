package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a closed set of string values.
type enumValue[T ~string] struct {
	target  *T
	allowed []T
	name    string
}

var _ pflag.Value = (*enumValue[string])(nil)

func newEnumValue[T ~string](target *T, allowed []T, name string) *enumValue[T] {
	return &enumValue[T]{target: target, allowed: allowed, name: name}
}

func (e *enumValue[T]) String() string { return string(*e.target) }
func (e *enumValue[T]) Type() string   { return e.name }

func (e *enumValue[T]) Set(s string) error {
	for _, a := range e.allowed {
		if strings.EqualFold(string(a), s) {
			*e.target = a
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", e.choices())
}

func (e *enumValue[T]) choices() string {
	parts := make([]string, len(e.allowed))
	for i, a := range e.allowed {
		parts[i] = string(a)
	}
	return strings.Join(parts, "|")
}

// enumFlag registers an enum flag and lists the choices in its usage.
func enumFlag[T ~string](fs *pflag.FlagSet, target *T, allowed []T, name, typeName, usage string) {
	v := newEnumValue(target, allowed, typeName)
	fs.Var(v, name, fmt.Sprintf("%s (%s)", usage, v.choices()))
}
