package function

import "errors"

// Sentinel errors for function registration and expression compilation.
var (
	ErrNilDescriptor    = errors.New("function: nil descriptor")
	ErrEmptyName        = errors.New("function: name must not be empty")
	ErrNilHandle        = errors.New("function: handle must not be nil")
	ErrExprCompileFailed = errors.New("function: expression compilation failed")
	ErrExprRunFailed    = errors.New("function: expression execution failed")
	ErrExprInputCount   = errors.New("function: expression input count mismatch")
)
