//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package query

import "fmt"

// InvalidArgumentError is a contract violation detected while building the
// request. It always fails before any network call.
type InvalidArgumentError struct {
	msg string
}

func (e InvalidArgumentError) Error() string {
	return "invalid argument: " + e.msg
}

func invalidArgumentf(format string, args ...interface{}) InvalidArgumentError {
	return InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

// ConnectionError wraps any transport failure. The cause is preserved for
// errors.As/Is but never surfaced raw.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	return "connection: " + e.Err.Error()
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

// DecodeError means the reply violated a structural invariant of the
// protocol. The caller receives no partial result.
type DecodeError struct {
	msg string
}

func (e DecodeError) Error() string {
	return "decode: " + e.msg
}

func decodeErrorf(format string, args ...interface{}) DecodeError {
	return DecodeError{msg: fmt.Sprintf(format, args...)}
}

// TypeMismatchError is raised at projection time when a declared model field
// has no counterpart in the decoded property bag.
type TypeMismatchError struct {
	Field string
	msg   string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch on field %q: %s", e.Field, e.msg)
}
