// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import "errors"

// Errs accumulates the non-nil errors passed to Add. Err is nil until the
// first failure and then matches, through errors.Is, every failure added.
type Errs struct{ Err error }

func (e *Errs) Errored() bool {
	return e.Err != nil
}

func (e *Errs) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			e.Err = errors.Join(e.Err, err)
		}
	}
}
