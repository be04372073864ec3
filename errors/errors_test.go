package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfPathError(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad path")
	assert.Equal(t, ErrCodeInvalidInput, err.Code)
	assert.Equal(t, "INVALID_INPUT: bad path", err.Error())

	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeGeneral, "readlink failed")
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.Contains(t, wrapped.Error(), "caused by: underlying error")

	assert.True(t, Is(wrapped, ErrCodeGeneral))
	assert.False(t, Is(wrapped, ErrCodeBufferTooSmall))
	assert.False(t, Is(nil, ErrCodeGeneral))

	detailed := err.WithDetail("path", "/tmp").WithDetail("limit", 1024)
	assert.Equal(t, "/tmp", detailed.Details["path"])
	assert.Equal(t, 1024, detailed.Details["limit"])
}

func TestGetCodeThroughWrapping(t *testing.T) {
	inner := PathTooLong(strings.Repeat("a", 10), 4)
	outer := fmt.Errorf("resolving: %w", inner)

	assert.Equal(t, ErrCodePathTooLong, GetCode(outer))
	assert.True(t, Is(outer, ErrCodePathTooLong))
	assert.Equal(t, ErrorCode(""), GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))

	var target *SelfPathError
	require.True(t, stderrors.As(outer, &target))
	assert.Equal(t, 10, target.Details["length"])
}

func TestErrorConstructors(t *testing.T) {
	err := BufferTooSmall(16)
	assert.Equal(t, ErrCodeBufferTooSmall, err.Code)
	assert.Equal(t, 16, err.Details["capacity"])

	cause := fmt.Errorf("ENOENT")
	err = AbsoluteResolutionFailed("missing/dir", cause)
	assert.Equal(t, ErrCodeAbsoluteResolutionFailed, err.Code)
	assert.Equal(t, "missing/dir", err.Details["path"])
	assert.True(t, stderrors.Is(err, cause))

	err = General("GetModuleFileName", cause)
	assert.Equal(t, "GetModuleFileName", err.Details["op"])

	assert.Contains(t, ConfigNotFound("/x/selfpath.yml").ToJSON(), `"code": "CONFIG_NOT_FOUND"`)
}
