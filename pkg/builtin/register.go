package builtin

import "github.com/flowgraph/engine/pkg/function"

// All returns one descriptor per built-in function, under its default name
// and, for "concat" and "repeat", its default configuration (empty
// separator, zero repetitions). Callers needing a differently configured
// concat or repeat should construct it directly with Concat or Repeat and
// register it under a distinct name.
func All() []*function.Descriptor {
	return []*function.Descriptor{
		Add(),
		Subtract(),
		Multiply(),
		Divide(),
		Uppercase(),
		Lowercase(),
		Titlecase(),
		Camelcase(),
		Inversecase(),
		Concat(""),
		Repeat(0),
	}
}

// Register adds every descriptor from All to reg, stopping at the first
// failure (typically types.ErrDuplicateName if the registry already has a
// function under one of these names).
func Register(reg *function.Registry) error {
	for _, d := range All() {
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers every built-in descriptor and panics on error.
func MustRegister(reg *function.Registry) {
	if err := Register(reg); err != nil {
		panic(err)
	}
}
