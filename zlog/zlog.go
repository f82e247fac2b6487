// Copyright 2024-2026 The etrace Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package zlog integrates etrace error chains with zerolog. Instead of
// flattening a chain into one message string it logs each level as a
// structured object, so kind, description and location stay queryable in
// JSON output.
package zlog

import (
	"github.com/rs/zerolog"

	"github.com/stkali/etrace"
)

// Field names used for marshalled error chains.
const (
	KindField        = "kind"
	DescriptionField = "description"
	FileField        = "file"
	LineField        = "line"
	ChainField       = "chain"
)

// maxDepth bounds how many cause levels are marshalled, mirroring the cap
// the text renderer applies. Deeper levels marshal as the string "...".
const maxDepth = 10000

// Object returns a marshaler that logs err and its full cause chain as a
// structured object: the head error's fields at the top level and each
// cause as an element of the "chain" array. Errors that do not come from
// etrace are first converted with etrace.AsWrapped. A nil err marshals as
// an empty object.
//
//	logger.Error().Object("error", zlog.Object(err)).Msg("load failed")
func Object(err error) zerolog.LogObjectMarshaler {
	return chain{w: etrace.AsWrapped(err)}
}

type chain struct {
	w *etrace.WrappedError
}

// MarshalZerologObject implements the zerolog.LogObjectMarshaler interface.
func (c chain) MarshalZerologObject(e *zerolog.Event) {
	if c.w == nil {
		return
	}
	marshalLevel(e, c.w)
	if c.w.Cause() == nil {
		return
	}
	arr := zerolog.Arr()
	depth := 0
	for w := c.w.Cause(); w != nil; w = w.Cause() {
		if depth >= maxDepth {
			arr.Str("...")
			break
		}
		arr.Object(level{w: w})
		depth++
	}
	e.Array(ChainField, arr)
}

type level struct {
	w *etrace.WrappedError
}

// MarshalZerologObject implements the zerolog.LogObjectMarshaler interface.
func (l level) MarshalZerologObject(e *zerolog.Event) {
	marshalLevel(e, l.w)
}

func marshalLevel(e *zerolog.Event, w *etrace.WrappedError) {
	e.Str(KindField, w.Kind()).Str(DescriptionField, w.Description())
	if loc := w.Location(); !loc.IsZero() {
		e.Str(FileField, loc.File).Int(LineField, loc.Line)
	}
}

var _ zerolog.LogObjectMarshaler = chain{}
var _ zerolog.LogObjectMarshaler = level{}
