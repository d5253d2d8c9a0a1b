package errorlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRecord(t *testing.T) {
	t.Run("populates caller-owned record", func(t *testing.T) {
		var rec Record
		err := InitRecord(&rec, -2, 42, "doThing", "app.src", "bad input: %d", 7)
		require.NoError(t, err)

		assert.Equal(t, -2, rec.Code)
		assert.Equal(t, 42, rec.Line)
		assert.Equal(t, "doThing", rec.Function)
		assert.Equal(t, "app.src", rec.File)
		assert.Equal(t, "bad input: 7", rec.Description)
		assert.False(t, rec.owned)
	})

	t.Run("nil target", func(t *testing.T) {
		err := InitRecord(nil, 0, 1, "fn", "file", "msg")
		assert.ErrorIs(t, err, ErrNilValue)
	})

	t.Run("missing required arguments", func(t *testing.T) {
		var rec Record
		assert.ErrorIs(t, InitRecord(&rec, 0, 1, "", "file", "msg"), ErrNilValue)
		assert.ErrorIs(t, InitRecord(&rec, 0, 1, "fn", "", "msg"), ErrNilValue)
		assert.ErrorIs(t, InitRecord(&rec, 0, 1, "fn", "file", ""), ErrNilValue)
	})

	t.Run("truncates oversized description", func(t *testing.T) {
		var rec Record
		long := strings.Repeat("x", MaxDescriptionLen+100)

		err := InitRecord(&rec, 1, 1, "fn", "file", "%s", long)
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Len(t, rec.Description, MaxDescriptionLen)
		assert.Equal(t, "fn", rec.Function)
	})

	t.Run("truncates oversized function and file names", func(t *testing.T) {
		var rec Record
		longFn := strings.Repeat("f", MaxFunctionLen+1)
		longFile := strings.Repeat("p", MaxFileLen+1)

		err := InitRecord(&rec, 1, 1, longFn, longFile, "msg")
		assert.ErrorIs(t, err, ErrTruncated)
		assert.Len(t, rec.Function, MaxFunctionLen)
		assert.Len(t, rec.File, MaxFileLen)
		assert.Equal(t, "msg", rec.Description)
	})

	t.Run("exact maximum is not truncation", func(t *testing.T) {
		var rec Record
		err := InitRecord(&rec, 1, 1, strings.Repeat("f", MaxFunctionLen), "file", "msg")
		require.NoError(t, err)
		assert.Len(t, rec.Function, MaxFunctionLen)
	})

	t.Run("clears a previously attached cause", func(t *testing.T) {
		var rec Record
		require.NoError(t, InitRecord(&rec, 1, 1, "fn", "file", "msg"))
		rec.WithCause(assert.AnError)
		require.NoError(t, InitRecord(&rec, 2, 2, "fn2", "file2", "msg2"))
		assert.Nil(t, rec.Cause())
	})
}

func TestNewRecord(t *testing.T) {
	t.Run("returns owning handle", func(t *testing.T) {
		rec, err := NewRecord(7, 10, "fn", "file", "count=%d", 3)
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.True(t, rec.owned)
		assert.Equal(t, "count=3", rec.Description)
	})

	t.Run("truncation still returns the record", func(t *testing.T) {
		rec, err := NewRecord(7, 10, "fn", "file", "%s", strings.Repeat("y", MaxDescriptionLen*2))
		assert.ErrorIs(t, err, ErrTruncated)
		require.NotNil(t, rec)
		assert.Len(t, rec.Description, MaxDescriptionLen)
	})

	t.Run("nil handle on fatal error", func(t *testing.T) {
		rec, err := NewRecord(7, 10, "", "file", "msg")
		assert.ErrorIs(t, err, ErrNilValue)
		assert.Nil(t, rec)
	})
}

func TestCapture(t *testing.T) {
	rec, err := Capture(-1, "things went sideways: %s", "badly")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.True(t, rec.owned)
	assert.Contains(t, rec.Function, "TestCapture")
	assert.Equal(t, "record_test.go", rec.File)
	assert.Greater(t, rec.Line, 0)
	assert.Equal(t, "things went sideways: badly", rec.Description)
}

func TestDestroy(t *testing.T) {
	t.Run("nil handle is a no-op", func(t *testing.T) {
		assert.NoError(t, Destroy(nil))
	})

	t.Run("nil slot is a no-op", func(t *testing.T) {
		var rec *Record
		assert.NoError(t, Destroy(&rec))
	})

	t.Run("releases exactly once", func(t *testing.T) {
		rec, err := NewRecord(1, 1, "fn", "file", "msg")
		require.NoError(t, err)

		require.NoError(t, Destroy(&rec))
		assert.Nil(t, rec)

		// Handle was nilled by the first call; retry is a safe no-op.
		assert.NoError(t, Destroy(&rec))
	})

	t.Run("rejects a record it did not allocate", func(t *testing.T) {
		var rec Record
		require.NoError(t, InitRecord(&rec, 1, 1, "fn", "file", "msg"))

		ptr := &rec
		err := Destroy(&ptr)
		assert.ErrorIs(t, err, ErrInvalidRecord)
		assert.NotNil(t, ptr)
	})
}

func TestRecordString(t *testing.T) {
	var rec Record
	require.NoError(t, InitRecord(&rec, -2, 42, "doThing", "app.src", "bad input: %d", 7))

	s := rec.String()
	assert.Contains(t, s, "code=-2")
	assert.Contains(t, s, "line=42")
	assert.Contains(t, s, "doThing")
	assert.Contains(t, s, "app.src")
	assert.Contains(t, s, "bad input: 7")

	var nilRec *Record
	assert.Equal(t, "<nil>", nilRec.String())
}

func TestRecordWithCause(t *testing.T) {
	rec, err := NewRecord(1, 1, "fn", "file", "msg")
	require.NoError(t, err)

	assert.Same(t, rec, rec.WithCause(assert.AnError))
	assert.Equal(t, assert.AnError, rec.Cause())

	var nilRec *Record
	assert.Nil(t, nilRec.WithCause(assert.AnError))
	assert.Nil(t, nilRec.Cause())
}
