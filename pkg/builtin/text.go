package builtin

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/types"
)

// TextType is the ValueType text descriptors use for their string input and
// output slots.
const TextType types.ValueType = "text"

func textSlot(name string) function.Slot {
	return function.Slot{Name: name, Type: TextType}
}

func textInput(inputs []function.Value, i int) (string, error) {
	if i >= len(inputs) {
		return "", fmt.Errorf("%w: expected at least %d inputs, got %d", ErrArity, i+1, len(inputs))
	}
	s, ok := inputs[i].Payload.(string)
	if !ok {
		return "", fmt.Errorf("%w: input %d is not text", ErrPayloadType, i)
	}
	return s, nil
}

func textResult(s string) []function.Value {
	return []function.Value{{Type: TextType, Payload: s}}
}

func unaryTextFunc(transform func(string) string) function.InvocationHandle {
	return function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
		s, err := textInput(inputs, 0)
		if err != nil {
			return nil, err
		}
		return textResult(transform(s)), nil
	})
}

// Uppercase returns the "uppercase" descriptor.
func Uppercase() *function.Descriptor {
	return &function.Descriptor{
		Name:    "uppercase",
		Inputs:  []function.Slot{textSlot("text")},
		Outputs: []function.Slot{textSlot("result")},
		Handle:  unaryTextFunc(strings.ToUpper),
	}
}

// Lowercase returns the "lowercase" descriptor.
func Lowercase() *function.Descriptor {
	return &function.Descriptor{
		Name:    "lowercase",
		Inputs:  []function.Slot{textSlot("text")},
		Outputs: []function.Slot{textSlot("result")},
		Handle:  unaryTextFunc(strings.ToLower),
	}
}

// Titlecase returns the "titlecase" descriptor: the first letter of every
// word capitalized, e.g. "hello world" -> "Hello World".
func Titlecase() *function.Descriptor {
	return &function.Descriptor{
		Name:    "titlecase",
		Inputs:  []function.Slot{textSlot("text")},
		Outputs: []function.Slot{textSlot("result")},
		Handle:  unaryTextFunc(toTitleCase),
	}
}

// Camelcase returns the "camelcase" descriptor: word-split input joined as
// camelCase, e.g. "hello world" -> "helloWorld".
func Camelcase() *function.Descriptor {
	return &function.Descriptor{
		Name:    "camelcase",
		Inputs:  []function.Slot{textSlot("text")},
		Outputs: []function.Slot{textSlot("result")},
		Handle:  unaryTextFunc(toCamelCase),
	}
}

// Inversecase returns the "inversecase" descriptor: every letter's case
// flipped, e.g. "Hello" -> "hELLO".
func Inversecase() *function.Descriptor {
	return &function.Descriptor{
		Name:    "inversecase",
		Inputs:  []function.Slot{textSlot("text")},
		Outputs: []function.Slot{textSlot("result")},
		Handle:  unaryTextFunc(toInverseCase),
	}
}

// Concat returns the "concat" descriptor: its handle joins however many text
// inputs it is given with sep. The descriptor declares a single input slot,
// and a Graph binds at most one edge to it, so as a graph node it receives
// exactly one input.
func Concat(sep string) *function.Descriptor {
	return &function.Descriptor{
		Name:    "concat",
		Inputs:  []function.Slot{textSlot("parts")},
		Outputs: []function.Slot{textSlot("result")},
		Handle: function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
			parts := make([]string, len(inputs))
			for i, in := range inputs {
				s, ok := in.Payload.(string)
				if !ok {
					return nil, fmt.Errorf("%w: input %d is not text", ErrPayloadType, i)
				}
				parts[i] = s
			}
			return textResult(strings.Join(parts, sep)), nil
		}),
	}
}

// Repeat returns the "repeat" descriptor: its single text input repeated n
// times. A negative n fails with ErrNegativeCount.
func Repeat(n int) *function.Descriptor {
	return &function.Descriptor{
		Name:    "repeat",
		Inputs:  []function.Slot{textSlot("text")},
		Outputs: []function.Slot{textSlot("result")},
		Handle: function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
			s, err := textInput(inputs, 0)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: got %d", ErrNegativeCount, n)
			}
			return textResult(strings.Repeat(s, n)), nil
		}),
	}
}

var titleCaser = cases.Title(language.Und)

// toTitleCase converts text to Title Case (first letter of each word
// capitalized), via golang.org/x/text/cases rather than the deprecated
// strings.Title.
func toTitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// toCamelCase converts text to camelCase. Example: "hello world" ->
// "helloWorld".
func toCamelCase(s string) string {
	return strcase.ToLowerCamel(strings.Join(strings.Fields(s), "_"))
}

// toInverseCase inverts the case of each character. Example: "Hello" ->
// "hELLO". No ecosystem case-transform library offers a swap-case
// operation, so this stays hand-rolled over unicode.
func toInverseCase(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			runes[i] = unicode.ToLower(r)
		} else if unicode.IsLower(r) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}
