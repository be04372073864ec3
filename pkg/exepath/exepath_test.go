package exepath

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/pathbuf"
)

const guard = 0xA5

func referencePath(t *testing.T) string {
	t.Helper()
	path, err := os.Executable()
	require.NoError(t, err)
	return path
}

func fixedQuery(path string, truncated bool, err error) Query {
	return func() (string, bool, error) {
		return path, truncated, err
	}
}

func TestResolveZeroCapacity(t *testing.T) {
	calls := 0
	r := NewResolver(func() (string, bool, error) {
		calls++
		return "/bin/app", false, nil
	})

	assert.Equal(t, BufferTooSmall, r.Resolve(nil).Status)
	assert.Equal(t, BufferTooSmall, r.Resolve(pathbuf.Buffer{}).Status)
	assert.Equal(t, BufferTooSmall, Resolve(nil).Status)
	assert.Zero(t, calls, "zero capacity must not reach the OS")
}

func TestResolveSuccess(t *testing.T) {
	want := referencePath(t)

	buf := pathbuf.New(pathbuf.MaxPathLength * 4)
	res := Resolve(buf)
	require.Equal(t, Success, res.Status, "err: %v", res.Err)
	assert.True(t, res.OK())
	assert.True(t, res.PathIncludesFilename)
	assert.Equal(t, want, buf.String())
	assert.True(t, filepath.IsAbs(buf.String()))
}

func TestResolveExactFit(t *testing.T) {
	want := referencePath(t)

	buf := pathbuf.New(len(want) + 1)
	res := Resolve(buf)
	require.Equal(t, Success, res.Status)
	assert.Equal(t, want, buf.String())
	assert.Equal(t, byte(0), buf[len(want)])
}

func TestResolveSmallCapacitiesNeverOverflow(t *testing.T) {
	want := referencePath(t)
	backing := make([]byte, len(want)+64)

	for c := 0; c < len(want)+1; c++ {
		for i := range backing {
			backing[i] = guard
		}
		res := Resolve(pathbuf.Buffer(backing[:c]))
		require.Equal(t, BufferTooSmall, res.Status, "capacity %d", c)
		for i := c; i < len(backing); i++ {
			require.Equal(t, byte(guard), backing[i], "write past capacity %d at offset %d", c, i)
		}
	}
}

func TestResolveStableAcrossCalls(t *testing.T) {
	first := pathbuf.New(pathbuf.MaxPathLength)
	require.Equal(t, Success, Resolve(first).Status)

	for i := 0; i < 10; i++ {
		buf := pathbuf.New(pathbuf.MaxPathLength)
		require.Equal(t, Success, Resolve(buf).Status)
		assert.Equal(t, first.String(), buf.String())
	}
}

func TestResolveConcurrent(t *testing.T) {
	want := referencePath(t)

	const workers = 32
	var wg sync.WaitGroup
	results := make([]string, workers)
	statuses := make([]Status, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Odd workers get a buffer that is too small.
			size := pathbuf.MaxPathLength
			if i%2 == 1 {
				size = len(want)
			}
			buf := pathbuf.New(size)
			statuses[i] = Resolve(buf).Status
			if statuses[i] == Success {
				results[i] = buf.String()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if i%2 == 1 {
			assert.Equal(t, BufferTooSmall, statuses[i], "worker %d", i)
			continue
		}
		assert.Equal(t, Success, statuses[i], "worker %d", i)
		assert.Equal(t, want, results[i], "worker %d", i)
	}
}

func TestResolveQueryOutcomes(t *testing.T) {
	osErr := stderrors.New("access denied")

	tests := []struct {
		name       string
		query      Query
		capacity   int
		wantStatus Status
		wantErr    error
		wantPath   string
	}{
		{
			name:       "os truncated working buffer",
			query:      fixedQuery("", true, osErr),
			capacity:   pathbuf.MaxPathLength,
			wantStatus: BufferTooSmall,
			wantErr:    osErr,
		},
		{
			name:       "zero length with error",
			query:      fixedQuery("", false, osErr),
			capacity:   pathbuf.MaxPathLength,
			wantStatus: GeneralError,
			wantErr:    osErr,
		},
		{
			name:       "zero length without error",
			query:      fixedQuery("", false, nil),
			capacity:   pathbuf.MaxPathLength,
			wantStatus: GeneralError,
			wantErr:    errEmptyImagePath,
		},
		{
			name:       "multibyte path counted in utf8 bytes",
			query:      fixedQuery("/opt/ünïcödé/app", false, nil),
			capacity:   len([]rune("/opt/ünïcödé/app")) + 1,
			wantStatus: BufferTooSmall,
		},
		{
			name:       "multibyte path fits",
			query:      fixedQuery("/opt/ünïcödé/app", false, nil),
			capacity:   len("/opt/ünïcödé/app") + 1,
			wantStatus: Success,
			wantPath:   "/opt/ünïcödé/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := pathbuf.New(tt.capacity)
			res := NewResolver(tt.query).Resolve(buf)
			assert.Equal(t, tt.wantStatus, res.Status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
			}
			if tt.wantStatus == Success {
				assert.Equal(t, tt.wantPath, buf.String())
			}
		})
	}
}

func TestResolveDirectory(t *testing.T) {
	want := filepath.Dir(referencePath(t))

	buf := pathbuf.New(pathbuf.MaxPathLength)
	res := ResolveDirectory(buf)
	require.Equal(t, Success, res.Status)
	assert.False(t, res.PathIncludesFilename)
	assert.Equal(t, want, buf.String())

	// The directory is shorter than the full path, so it fits where the path does not.
	exe := referencePath(t)
	small := pathbuf.New(len(exe))
	assert.Equal(t, BufferTooSmall, Resolve(small).Status)
	assert.Equal(t, Success, ResolveDirectory(small).Status)
}

func TestExecutable(t *testing.T) {
	path, err := Executable()
	require.NoError(t, err)
	assert.Equal(t, referencePath(t), path)
}

func TestExecutableErrorCodes(t *testing.T) {
	_, err := NewResolver(fixedQuery("", true, nil)).Executable()
	assert.True(t, errors.Is(err, errors.ErrCodeBufferTooSmall))

	osErr := stderrors.New("no such process")
	_, err = NewResolver(fixedQuery("", false, osErr)).Executable()
	assert.True(t, errors.Is(err, errors.ErrCodeGeneral))
	assert.ErrorIs(t, err, osErr)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "buffer too small", BufferTooSmall.String())
	assert.Equal(t, "general error", GeneralError.String())
	assert.Equal(t, "unknown", Status(42).String())
}
