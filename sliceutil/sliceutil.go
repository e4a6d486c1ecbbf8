package sliceutil

import (
	"slices"

	"github.com/bostick/common/abort"
)

// AppendUnique appends e to s, aborting through a if e is already present.
func AppendUnique[S ~[]E, E comparable](a *abort.Aborter, s S, e E) S {
	a.Assert(!slices.Contains(s, e), "!slices.Contains(s, e)")
	return append(s, e)
}

// RemoveUnique removes the single occurrence of e from s, aborting through a
// if e is absent.
func RemoveUnique[S ~[]E, E comparable](a *abort.Aborter, s S, e E) S {
	i := slices.Index(s, e)
	a.Assert(i >= 0, "i >= 0")
	return slices.Delete(s, i, i+1)
}
