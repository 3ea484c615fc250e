package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of spellings.
type enumValue[T ~string] struct {
	target  *T
	allowed map[string]bool
	name    string
}

var (
	_ pflag.Value = (*enumValue[domain.Units])(nil)
	_ pflag.Value = (*gasValue)(nil)
)

func newEnumValue[T ~string](target *T, allowed map[string]bool, name string) *enumValue[T] {
	return &enumValue[T]{target: target, allowed: allowed, name: name}
}

func (v *enumValue[T]) String() string { return string(*v.target) }

func (v *enumValue[T]) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !v.allowed[s] {
		return fmt.Errorf("invalid %s %q (want %s)", v.name, s, strings.Join(v.choices(), "|"))
	}
	*v.target = T(s)
	return nil
}

func (v *enumValue[T]) Type() string { return v.name }

func (v *enumValue[T]) choices() []string {
	out := make([]string, 0, len(v.allowed))
	for k := range v.allowed {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func unitsFlag(target *domain.Units) pflag.Value {
	return newEnumValue(target, domain.ValidUnits, "units")
}

func surfacePolicyFlag(target *domain.SurfaceIntervalPolicy) pflag.Value {
	return newEnumValue(target, domain.ValidSurfacePolicies, "policy")
}

func decoGasFlag(target *domain.DecoGasPolicy) pflag.Value {
	return newEnumValue(target, domain.ValidDecoGasPolicies, "deco-gas")
}

// gasValue accepts any id from the gas catalog.
type gasValue struct {
	target *string
}

func (v *gasValue) String() string { return *v.target }

func (v *gasValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := domain.LookupGas(s); !ok {
		ids := make([]string, 0, 8)
		for _, g := range domain.Gases() {
			ids = append(ids, g.ID)
		}
		return fmt.Errorf("unknown gas %q (want %s)", s, strings.Join(ids, "|"))
	}
	*v.target = s
	return nil
}

func (v *gasValue) Type() string { return "gas" }
