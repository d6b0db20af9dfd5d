// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the archive.
//
// The same [Validator] runs in the terminal client, where it checks the raw
// edit form before any optimistic change, and in the server, where it checks
// save requests, credentials and uploads before they reach storage. Rules are
// written with ozzo-validation so a failure renders as a readable
// "field: reason" message that the client can show as is.
package validators

import "context"

// Validator validates an input value. The optional field names narrow the
// rule set; see the field constants of each implementation.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
