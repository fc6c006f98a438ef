package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/graph.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/graph.yaml"}, calls[0])
	})
}

func TestDebouncer_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/project/graph.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/graph.yaml")
		d.Add("/project/other.yaml")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, calls, "window restarts on every event")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/project/graph.yaml", "/project/other.yaml"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		count := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		d.Add("a")
		time.Sleep(150 * time.Millisecond)
		d.Add("b")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(time.Second, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Flush()
		assert.Empty(t, calls)

		d.Add("a")
		d.Flush()
		require.Len(t, calls, 1)

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Len(t, calls, 1, "flushed paths are not delivered twice")
	})
}
