package term

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonBlockingReaderReadsBytesInOrder(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewNonBlockingReader(pr, true)
	defer r.Shutdown()

	go func() {
		pw.Write([]byte("ab"))
	}()

	b, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, int('a'), b)

	b, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, int('b'), b)
}

func TestNonBlockingReaderReturnsMinusOneOnEOF(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewNonBlockingReader(pr, true)
	defer r.Shutdown()

	pw.Close()

	b, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, -1, b)
}

func TestNonBlockingReaderPropagatesReadError(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewNonBlockingReader(pr, true)
	defer r.Shutdown()

	boom := assert.AnError
	pw.CloseWithError(boom)

	_, err := r.Read()
	assert.ErrorIs(t, err, boom)
}

func TestPeekTimeoutReturnsByteWithoutConsumingIt(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewNonBlockingReader(pr, true)
	defer r.Shutdown()

	go func() {
		pw.Write([]byte("z"))
	}()

	b, ok := r.PeekTimeout(500)
	require.True(t, ok)
	assert.Equal(t, int('z'), b)

	// The peeked byte is still delivered by the next Read.
	b, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, int('z'), b)
}

func TestPeekTimeoutReportsNoByteWithinDeadline(t *testing.T) {
	pr, _ := io.Pipe()
	r := NewNonBlockingReader(pr, true)
	defer r.Shutdown()

	start := time.Now()
	_, ok := r.PeekTimeout(20)
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestIsNonBlockingEnabledReflectsConstructorArg(t *testing.T) {
	pr, _ := io.Pipe()

	enabled := NewNonBlockingReader(pr, true)
	defer enabled.Shutdown()
	assert.True(t, enabled.IsNonBlockingEnabled())

	disabled := NewNonBlockingReader(pr, false)
	defer disabled.Shutdown()
	assert.False(t, disabled.IsNonBlockingEnabled())
}
