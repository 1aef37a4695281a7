// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cerr provides constant sentinel errors.
package cerr

import "fmt"

// Error is a string that can be declared as a constant and compared with
// errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Wrapf returns an error that reports e followed by a formatted detail and
// still matches e under errors.Is.
func (e Error) Wrapf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
