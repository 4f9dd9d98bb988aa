package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/entrhq/shopsim/pkg/browser"
	"github.com/entrhq/shopsim/pkg/browser/browsertest"
	"github.com/entrhq/shopsim/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeLauncher(store *browsertest.Store) browser.Launcher {
	return browser.LauncherFunc(func(ctx context.Context) (browser.Browser, error) {
		return store, nil
	})
}

func TestRunReleasesBrowser(t *testing.T) {
	store := browsertest.NewStore(browsertest.Product{Name: "Lipstick", Price: "₹1,200"})
	p := impulsiveLipstick(t)

	summary, err := Run(context.Background(), storeLauncher(store), p, ops(catalog.SearchProducts, catalog.ExtractProducts),
		WithHomeURL(browsertest.HomeURL), WithCartURL(browsertest.CartURL))

	require.NoError(t, err)
	assert.True(t, store.Closed)
	assert.Equal(t, "done", summary.Status)
	assert.Equal(t, 2, summary.Successes)
	assert.Equal(t, "Ava", summary.Persona)
	assert.NotEmpty(t, summary.SessionID)
}

func TestRunLaunchFailure(t *testing.T) {
	launcher := browser.LauncherFunc(func(ctx context.Context) (browser.Browser, error) {
		return nil, errors.New("chromium missing")
	})

	summary, err := Run(context.Background(), launcher, impulsiveLipstick(t), ops(catalog.SearchProducts))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chromium missing")
	assert.Equal(t, "aborted", summary.Status)
	assert.Zero(t, summary.Attempts)
}

func TestRunStorefrontFailure(t *testing.T) {
	store := browsertest.NewStore()
	store.FailOn = map[string]error{"Navigate": browser.ErrTimeout}

	summary, err := Run(context.Background(), storeLauncher(store), impulsiveLipstick(t), ops(catalog.SearchProducts),
		WithHomeURL(browsertest.HomeURL))

	require.ErrorIs(t, err, browser.ErrTimeout)
	assert.True(t, store.Closed)
	assert.Equal(t, "aborted", summary.Status)
	assert.Zero(t, store.Count("FillAndSubmit"))
	assert.Zero(t, summary.Attempts)
}
