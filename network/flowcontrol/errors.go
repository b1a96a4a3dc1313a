// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"errors"
	"fmt"

	"github.com/ava-labs/flowcontrol/ids"
)

// ErrInvariantViolated is wrapped by every *FatalError.
var ErrInvariantViolated = errors.New("flow control invariant violated")

// FatalError is raised, as a panic, when the capacity state of a peer
// connection becomes inconsistent. It is never recoverable for the
// connection it was raised on.
type FatalError struct {
	NodeID ids.NodeID
	Reason string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s for %s: %s", ErrInvariantViolated, e.NodeID, e.Reason)
}

func (*FatalError) Unwrap() error {
	return ErrInvariantViolated
}

// Recover runs [f] and returns the *FatalError it raised, if any. Any other
// panic is propagated unchanged.
func Recover(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fatal, ok := r.(*FatalError)
		if !ok {
			panic(r)
		}
		err = fatal
	}()

	f()
	return nil
}
