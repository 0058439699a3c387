package fixture_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrud/testkit/fixture"
)

type helperPath struct {
	Path string
}

func TestProvideAndResolve(t *testing.T) {
	s := fixture.NewSet()

	require.NoError(t, fixture.Provide(s, func() (*helperPath, error) {
		return &helperPath{Path: "/usr/lib/helpers/peer"}, nil
	}))

	got, err := fixture.Resolve[*helperPath](s)
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/helpers/peer", got.Path)
}

func TestProvideValue(t *testing.T) {
	s := fixture.NewSet()

	require.NoError(t, fixture.ProvideValue(s, "/bin/tool"))

	got, err := fixture.Resolve[string](s)
	require.NoError(t, err)
	assert.Equal(t, "/bin/tool", got)
}

func TestNamedFixtures(t *testing.T) {
	s := fixture.NewSet()

	// 同一类型可按名称注册多个
	require.NoError(t, fixture.ProvideValue(s, "/helpers/peer", fixture.WithName("peer")))
	require.NoError(t, fixture.ProvideValue(s, "/helpers/feature", fixture.WithName("feature")))

	peer, err := fixture.ResolveNamed[string](s, "peer")
	require.NoError(t, err)
	assert.Equal(t, "/helpers/peer", peer)

	feature, err := fixture.ResolveNamed[string](s, "feature")
	require.NoError(t, err)
	assert.Equal(t, "/helpers/feature", feature)

	_, err = fixture.ResolveNamed[string](s, "missing")
	require.Error(t, err)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	s := fixture.NewSet()

	require.NoError(t, fixture.ProvideValue(s, "/bin/tool"))
	err := fixture.ProvideValue(s, "/bin/other")
	require.Error(t, err)

	// 名称不同不算重复
	require.NoError(t, fixture.ProvideValue(s, "/bin/other", fixture.WithName("other")))
	assert.Equal(t, 2, s.Len())
}

func TestSharedProviderRunsOnce(t *testing.T) {
	s := fixture.NewSet()

	calls := 0
	require.NoError(t, fixture.Provide(s, func() (int, error) {
		calls++
		return calls, nil
	}, fixture.Shared()))

	for i := 0; i < 3; i++ {
		got, err := fixture.Resolve[int](s)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	}
	assert.Equal(t, 1, calls)
}

func TestNonSharedProviderRunsPerResolve(t *testing.T) {
	s := fixture.NewSet()

	calls := 0
	require.NoError(t, fixture.Provide(s, func() (int, error) {
		calls++
		return calls, nil
	}))

	first, err := fixture.Resolve[int](s)
	require.NoError(t, err)
	second, err := fixture.Resolve[int](s)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestProviderErrorIsWrapped(t *testing.T) {
	s := fixture.NewSet()

	cause := errors.New("helper unavailable")
	require.NoError(t, fixture.Provide(s, func() (string, error) {
		return "", cause
	}))

	_, err := fixture.Resolve[string](s)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestResolveUnregisteredType(t *testing.T) {
	s := fixture.NewSet()
	_, err := fixture.Resolve[*helperPath](s)
	require.Error(t, err)
}

func TestNilProviderRejected(t *testing.T) {
	s := fixture.NewSet()
	err := fixture.Provide[string](s, nil)
	require.Error(t, err)
}

func TestGetInsideTestBody(t *testing.T) {
	s := fixture.NewSet()
	require.NoError(t, fixture.ProvideValue(s, "/helpers/peer", fixture.WithName("peer")))

	got := fixture.Get[string](t, s, "peer")
	assert.Equal(t, "/helpers/peer", got)
}
