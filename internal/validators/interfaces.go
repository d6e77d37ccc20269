// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sync objects and object API requests.
//
// The object API validates every incoming object and request with
// [NewObjectValidator]; the client runs the same rules on entities before
// encoding them. Passing field names to Validate restricts the check to
// those fields, e.g. [FieldID] and [FieldType] for a delete.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
