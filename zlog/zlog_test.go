package zlog_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stkali/etrace"
	"github.com/stkali/etrace/zlog"
)

// code is the kind tag used across the adapter tests.
type code string

func TestObjectChain(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	base := etrace.Newf(code("Io"), etrace.At("x.go", 10), "file missing")
	err := etrace.Wrapf(code("Parse"), etrace.At("y.go", 20), base, "config invalid")
	logger.Error().Object("error", zlog.Object(err)).Msg("load failed")

	require.JSONEq(t, `{
		"level": "error",
		"error": {
			"kind": "Parse",
			"description": "config invalid",
			"file": "y.go",
			"line": 20,
			"chain": [
				{"kind": "Io", "description": "file missing", "file": "x.go", "line": 10}
			]
		},
		"message": "load failed"
	}`, buf.String())
}

func TestObjectSingleLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	err := etrace.Newf(code("Io"), etrace.At("x.go", 10), "file missing")
	logger.Warn().Object("error", zlog.Object(err)).Msg("retrying")

	require.JSONEq(t, `{
		"level": "warn",
		"error": {
			"kind": "Io",
			"description": "file missing",
			"file": "x.go",
			"line": 10
		},
		"message": "retrying"
	}`, buf.String())
}

func TestObjectForeign(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Error().Object("error", zlog.Object(errors.New("boom"))).Msg("call failed")

	require.JSONEq(t, `{
		"level": "error",
		"error": {
			"kind": "*errors.errorString",
			"description": "boom"
		},
		"message": "call failed"
	}`, buf.String())
}

func TestObjectNil(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("error", zlog.Object(nil)).Msg("nothing to report")

	require.JSONEq(t, `{
		"level": "info",
		"error": {},
		"message": "nothing to report"
	}`, buf.String())
}

func TestObjectDeepChain(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var tail *etrace.WrappedError
	for i := 1; i <= 4; i++ {
		tail = etrace.NewWrapped("K", fmt.Sprintf("level %d", i), etrace.At("x.go", i), tail)
	}
	head := etrace.NewWrapped("Head", "top", etrace.At("h.go", 1), tail)
	logger.Error().Object("error", zlog.Object(head)).Msg("deep")

	require.JSONEq(t, `{
		"level": "error",
		"error": {
			"kind": "Head",
			"description": "top",
			"file": "h.go",
			"line": 1,
			"chain": [
				{"kind": "K", "description": "level 4", "file": "x.go", "line": 4},
				{"kind": "K", "description": "level 3", "file": "x.go", "line": 3},
				{"kind": "K", "description": "level 2", "file": "x.go", "line": 2},
				{"kind": "K", "description": "level 1", "file": "x.go", "line": 1}
			]
		},
		"message": "deep"
	}`, buf.String())
}
