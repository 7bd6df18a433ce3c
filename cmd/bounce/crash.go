package main

import (
	"fmt"
	"runtime/debug"
)

// crashError is a recovered panic with the stack of the goroutine that raised it
type crashError struct {
	value any
	stack []byte
}

func (e *crashError) Error() string {
	return fmt.Sprintf("crashed: %v\n\nStack Trace:\n%s", e.value, e.stack)
}

// guard runs fn and converts a panic into a crashError
// recover only sees panics of its own goroutine, so every goroutine touching the game runs under guard
// restore runs before returning so the terminal is usable for the report
func guard(restore func(), fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			restore()
			err = &crashError{value: r, stack: debug.Stack()}
		}
	}()
	return fn()
}
