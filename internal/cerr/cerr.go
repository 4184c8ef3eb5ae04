// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cerr provides a string-based error type so that sentinel errors can
// be declared as constants.
package cerr

// Error is an error whose value is its message. Two Errors are equal, and
// match under errors.Is, exactly when their messages are equal.
type Error string

// Error returns the message.
func (e Error) Error() string {
	return string(e)
}
