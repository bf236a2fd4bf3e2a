package strata

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/strata/schema"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that resolves configuration once at graph
// construction and provides the final *schema.Instance under the module
// name as a DI named tag. Arguments default to os.Args[1:]; use WithArgs to
// override (e.g. in tests).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, s *schema.Schema, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*schema.Instance, error) {
					resolver, err := New(s, append([]Option{WithName(name)}, opts...)...)
					if err != nil {
						return nil, err
					}

					args := resolver.options.Args
					if args == nil {
						args = os.Args[1:]
					}

					return resolver.Parse(args)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
