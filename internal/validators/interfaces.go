// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user supplied input before it reaches the live
// configuration.
//
// The config loader runs every parsed config file through [ConfigValidator]
// before merging it over the defaults; a file that fails validation is
// treated exactly like a file that is not valid JSON. The mutator validates
// variable paths the same way before walking the tree.
package validators

import "context"

// Validator validates an arbitrary input value. Optional field names restrict
// validation to a subset of checks; without them every check of the concrete
// validator runs.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
