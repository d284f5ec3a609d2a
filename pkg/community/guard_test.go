package community

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserGuard(t *testing.T) {
	g := newUserGuard()

	release, ok := g.acquire("alice")
	require.True(t, ok)

	_, ok = g.acquire("alice")
	require.False(t, ok)

	// Other users are not affected.
	releaseBob, ok := g.acquire("bob")
	require.True(t, ok)
	releaseBob()

	release()
	release, ok = g.acquire("alice")
	require.True(t, ok)
	release()
}

func TestUserGuard_Concurrent(t *testing.T) {
	g := newUserGuard()

	var (
		wg       sync.WaitGroup
		acquired atomic.Int32
		start    = make(chan struct{})
		releases = make(chan func(), 50)
	)
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if release, ok := g.acquire("alice"); ok {
				acquired.Add(1)
				releases <- release
			}
		}()
	}
	close(start)
	wg.Wait()
	close(releases)

	require.Equal(t, int32(1), acquired.Load())
	for release := range releases {
		release()
	}
}
