// Package builtin registers a small library of native Go functions —
// arithmetic on numbers and a handful of text transforms — as
// function.Descriptors. They require no scripting engine and no host
// bridge, so a Graph can reference them the moment a *function.Registry is
// constructed.
package builtin
