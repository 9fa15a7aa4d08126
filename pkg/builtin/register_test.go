package builtin

import (
	"testing"

	"github.com/flowgraph/engine/pkg/function"
)

func TestRegister(t *testing.T) {
	reg := function.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for _, name := range []string{
		"add", "subtract", "multiply", "divide",
		"uppercase", "lowercase", "titlecase", "camelcase", "inversecase",
		"concat", "repeat",
	} {
		if _, err := reg.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}
}

func TestRegister_DuplicateFailsWithoutPartialState(t *testing.T) {
	reg := function.NewRegistry()
	reg.MustRegister(Add())

	if err := Register(reg); err == nil {
		t.Fatalf("Register() on a registry with a conflicting name succeeded, want error")
	}
	if _, err := reg.Lookup("subtract"); err == nil {
		t.Fatalf("Register() registered %q before failing on the conflicting name", "subtract")
	}
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	reg := function.NewRegistry()
	reg.MustRegister(Add())

	defer func() {
		if recover() == nil {
			t.Fatalf("MustRegister() did not panic on duplicate name")
		}
	}()
	MustRegister(reg)
}
