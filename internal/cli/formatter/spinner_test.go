package formatter

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_DrawsAndClears(t *testing.T) {
	var out syncBuffer
	stop := StartSpinner(&out, "Analyzing idea...")
	stop()
	stop()

	got := out.String()
	assert.Contains(t, stripANSI(got), "Analyzing idea...")
	assert.True(t, bytes.HasSuffix([]byte(got), []byte("\r\033[K")), "line is cleared on stop")
}
