//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/jobscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Browser(t *testing.T) {
	t.Parallel()

	t.Run("relaunches chrome once the limit is reached", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		require.NotNil(t, first)
		manager.PageRendered()
		manager.PageRendered()

		second := manager.Browser()

		require.NotNil(t, second)
		assert.NotSame(t, first, second)
		assert.Same(t, second, manager.Browser())
	})

	t.Run("keeps chrome below the limit", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(5))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		manager.PageRendered()
		manager.PageRendered()

		assert.Same(t, first, manager.Browser())
	})
}

func TestBrowserManager_Close(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	require.NotZero(t, manager.LauncherPID())

	require.NoError(t, manager.Close())

	assert.Zero(t, manager.LauncherPID())
	assert.NoError(t, manager.Close())
}
