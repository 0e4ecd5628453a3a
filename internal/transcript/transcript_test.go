package transcript

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendInOrder(t *testing.T) {
	log := New()

	s1 := log.Reserve()
	s2 := log.Reserve()
	log.Append(s1, "> first", "ok")
	log.Append(s2, "> second")

	assert.Equal(t, []string{"> first", "ok", "> second"}, log.Lines())
}

func TestLog_OutOfOrderCompletionBuffers(t *testing.T) {
	log := New()

	s1 := log.Reserve()
	s2 := log.Reserve()

	// C2 resolves before C1; its lines must wait for C1's.
	log.Append(s2, "> second", "fast")
	assert.Empty(t, log.Lines(), "later completion is buffered until earlier sequence releases")

	log.Append(s1, "> first", "slow")
	assert.Equal(t, []string{"> first", "slow", "> second", "fast"}, log.Lines())
}

func TestLog_SkipReleasesQueue(t *testing.T) {
	log := New()

	s1 := log.Reserve()
	s2 := log.Reserve()
	log.Append(s2, "> second")
	log.Skip(s1)

	assert.Equal(t, []string{"> second"}, log.Lines())
}

func TestLog_Subscribe(t *testing.T) {
	log := New()

	var got []string
	cancel := log.Subscribe(func(line string) { got = append(got, line) })

	s1 := log.Reserve()
	s2 := log.Reserve()
	log.Append(s2, "b")
	log.Append(s1, "a")

	assert.Equal(t, []string{"a", "b"}, got, "subscribers see lines in release order")

	cancel()
	log.Append(log.Reserve(), "c")
	assert.Equal(t, []string{"a", "b"}, got, "cancelled subscriber gets nothing")
}

func TestLog_Reset(t *testing.T) {
	log := New()
	log.Append(log.Reserve(), "line")
	require.Equal(t, 1, log.Len())

	log.Reset()
	assert.Zero(t, log.Len())

	// Counters restart cleanly after reset.
	log.Append(log.Reserve(), "fresh")
	assert.Equal(t, []string{"fresh"}, log.Lines())
}

func TestLog_ConcurrentAppends(t *testing.T) {
	log := New()

	const n = 50
	seqs := make([]uint64, n)
	for i := range seqs {
		seqs[i] = log.Reserve()
	}

	var wg sync.WaitGroup
	for i := n - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Append(seqs[i], fmt.Sprintf("line-%03d", i))
		}(i)
	}
	wg.Wait()

	lines := log.Lines()
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("line-%03d", i), line, "release order follows reservation order")
	}
}
