// Copyright 2024-2026 The etrace Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package etrace provides structured error values that keep the failure
// kind, a human-readable description and the source location separate
// instead of folding everything into one string, and lets errors of
// different kind types form a single cause chain.
//
// The package is built around two types. Error[K] is the typed form: K is a
// caller-defined kind tag that classifies the failure, and the package never
// interprets it beyond printing. WrappedError is the erased form, produced
// by Wrapped, in which the kind has been flattened to its printed text so
// that a chain can mix kinds freely. Erasure is one-way; once erased, the
// typed kind cannot be recovered.
//
// Errors render as one line per chain level:
//
//	Parse: config invalid (at y.go:20)
//	  - Io: file missing (at x.go:10)
//
// Each level prints as "kind: description (at file:line)", the location
// suffix is omitted when unknown, and every cause is introduced by "\n  - ".
// The format is stable across releases so callers may match rendered output
// byte for byte.
//
// All error values are immutable once constructed and may be shared between
// goroutines without synchronization. Kind tags should be small immutable
// values such as enumeration constants.
//
// Error and WrappedError implement Unwrap, so errors.Is and errors.As
// traverse chains built here just like chains built with fmt.Errorf.
package etrace
