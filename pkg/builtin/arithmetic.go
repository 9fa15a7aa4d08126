package builtin

import (
	"fmt"

	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/types"
)

// NumberType is the ValueType arithmetic descriptors use for their two
// numeric input slots and their single output slot.
const NumberType types.ValueType = "number"

func numberSlot(name string) function.Slot {
	return function.Slot{Name: name, Type: NumberType}
}

func numberInputs(inputs []function.Value) (left, right float64, err error) {
	if len(inputs) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 inputs, got %d", ErrArity, len(inputs))
	}
	left, ok := inputs[0].Payload.(float64)
	if !ok {
		return 0, 0, fmt.Errorf("%w: input 0 is not a number", ErrPayloadType)
	}
	right, ok = inputs[1].Payload.(float64)
	if !ok {
		return 0, 0, fmt.Errorf("%w: input 1 is not a number", ErrPayloadType)
	}
	return left, right, nil
}

func numberResult(v float64) []function.Value {
	return []function.Value{{Type: NumberType, Payload: v}}
}

// Add returns the "add" descriptor: left + right.
func Add() *function.Descriptor {
	return &function.Descriptor{
		Name:    "add",
		Inputs:  []function.Slot{numberSlot("left"), numberSlot("right")},
		Outputs: []function.Slot{numberSlot("result")},
		Handle: function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
			left, right, err := numberInputs(inputs)
			if err != nil {
				return nil, err
			}
			return numberResult(left + right), nil
		}),
	}
}

// Subtract returns the "subtract" descriptor: left - right.
func Subtract() *function.Descriptor {
	return &function.Descriptor{
		Name:    "subtract",
		Inputs:  []function.Slot{numberSlot("left"), numberSlot("right")},
		Outputs: []function.Slot{numberSlot("result")},
		Handle: function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
			left, right, err := numberInputs(inputs)
			if err != nil {
				return nil, err
			}
			return numberResult(left - right), nil
		}),
	}
}

// Multiply returns the "multiply" descriptor: left * right.
func Multiply() *function.Descriptor {
	return &function.Descriptor{
		Name:    "multiply",
		Inputs:  []function.Slot{numberSlot("left"), numberSlot("right")},
		Outputs: []function.Slot{numberSlot("result")},
		Handle: function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
			left, right, err := numberInputs(inputs)
			if err != nil {
				return nil, err
			}
			return numberResult(left * right), nil
		}),
	}
}

// Divide returns the "divide" descriptor: left / right. Dividing by zero
// fails with ErrDivideByZero rather than producing an infinite or NaN
// result.
func Divide() *function.Descriptor {
	return &function.Descriptor{
		Name:    "divide",
		Inputs:  []function.Slot{numberSlot("left"), numberSlot("right")},
		Outputs: []function.Slot{numberSlot("result")},
		Handle: function.NativeFunc(func(inputs []function.Value) ([]function.Value, error) {
			left, right, err := numberInputs(inputs)
			if err != nil {
				return nil, err
			}
			if right == 0 {
				return nil, ErrDivideByZero
			}
			return numberResult(left / right), nil
		}),
	}
}
