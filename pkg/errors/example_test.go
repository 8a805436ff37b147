// Package errors provides examples of structured error handling for the
// pool module.
package errors_test

import (
	"fmt"
	"io"

	"github.com/nothke/Pool/pkg/errors"
)

// Example demonstrates basic error creation and typed checks.
func Example() {
	err := errors.New(errors.ErrorTypeExhausted, "all pool slots are alive").
		WithDetail("pool", "bullets").
		WithDetail("capacity", 256)

	fmt.Println(err.Error())

	if errors.IsType(err, errors.ErrorTypeExhausted) {
		fmt.Println("pool is full")
	}

	// Output:
	// exhausted: all pool slots are alive
	// pool is full
}

// ExampleWrap shows how to wrap existing errors with context.
func ExampleWrap() {
	originalErr := io.EOF

	err := errors.Wrap(originalErr, errors.ErrorTypeConfig, "failed to read pool config").
		WithDetail("path", "pools.yaml")

	if errors.IsType(err, errors.ErrorTypeConfig) {
		fmt.Println("this is a config error")
	}
	fmt.Println(err.Error())

	// Output:
	// this is a config error
	// config: failed to read pool config: EOF
}

// ExampleErrorType demonstrates the error taxonomy of the pool contract.
func ExampleErrorType() {
	valErr := errors.New(errors.ErrorTypeValidation, "pool capacity must be positive").
		WithDetail("capacity", -1)
	fmt.Printf("Validation error: %v\n", valErr)

	unsupErr := errors.New(errors.ErrorTypeUnsupported, "fixed pool slots cannot accept external elements")
	fmt.Printf("Unsupported error: %v\n", unsupErr)

	// Output:
	// Validation error: validation: pool capacity must be positive
	// Unsupported error: unsupported: fixed pool slots cannot accept external elements
}
