//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_RecyclesAfterMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
	require.NoError(t, err)
	defer manager.Close()

	first, release, err := manager.Acquire()
	require.NoError(t, err)
	release()
	_, release, err = manager.Acquire()
	require.NoError(t, err)
	release()

	second, release, err := manager.Acquire()
	require.NoError(t, err)
	defer release()

	assert.NotSame(t, first, second)
}

func TestBrowserManager_KeepsBrowserWhileLeased(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(1))
	require.NoError(t, err)
	defer manager.Close()

	first, releaseFirst, err := manager.Acquire()
	require.NoError(t, err)
	_, releaseSecond, err := manager.Acquire()
	require.NoError(t, err)
	releaseSecond()

	// The first lease is still open, so the worn-out browser stays.
	third, releaseThird, err := manager.Acquire()
	require.NoError(t, err)
	assert.Same(t, first, third)

	releaseFirst()
	releaseThird()
}

func TestBrowserManager_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(5))
	require.NoError(t, err)
	defer manager.Close()

	first, release, err := manager.Acquire()
	require.NoError(t, err)
	release()
	release()
	release()

	// One page counted, well below the limit.
	same, release, err := manager.Acquire()
	require.NoError(t, err)
	defer release()
	assert.Same(t, first, same)
}

func TestBrowserManager_AcquireAfterClose(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())

	_, _, err = manager.Acquire()

	assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	assert.Zero(t, manager.LauncherPID())
}
