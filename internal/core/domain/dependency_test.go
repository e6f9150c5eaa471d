package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/core/domain"
)

func TestParseScope(t *testing.T) {
	for _, s := range domain.Scopes {
		got, err := domain.ParseScope(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := domain.ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeCompile, got)

	got, err = domain.ParseScope("Test")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeTest, got)

	_, err = domain.ParseScope("bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidScope)
}

func TestDependencySpec_Validate(t *testing.T) {
	pinned := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	require.NoError(t, pinned.Validate())

	unpinned := domain.NewDependencySpec(domain.NewCoordinate("g", "a", ""))
	assert.ErrorIs(t, unpinned.Validate(), domain.ErrMissingVersion)

	noGroup := domain.NewDependencySpec(domain.NewCoordinate("", "a", "1.0"))
	assert.ErrorIs(t, noGroup.Validate(), domain.ErrInvalidCoordinate)
}

func TestDependencySpec_Excludes(t *testing.T) {
	spec := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	spec.Exclusions = []domain.Exclusion{domain.NewExclusion("commons-logging", "commons-logging")}

	assert.True(t, spec.Excludes(domain.NewCoordinate("commons-logging", "commons-logging", "1.2")))
	assert.False(t, spec.Excludes(domain.NewCoordinate("commons-logging", "other", "1.2")))
}

func TestParseExclusion(t *testing.T) {
	e, err := domain.ParseExclusion("org.slf4j:slf4j-api")
	require.NoError(t, err)
	assert.Equal(t, "org.slf4j:slf4j-api", e.Key())

	_, err = domain.ParseExclusion("org.slf4j")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestSpecsDigest_OrderIndependent(t *testing.T) {
	a := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	b := domain.NewDependencySpec(domain.NewCoordinate("g", "b", "2.0"))
	b.Scope = domain.ScopeTest

	d1 := domain.SpecsDigest([]domain.DependencySpec{a, b})
	d2 := domain.SpecsDigest([]domain.DependencySpec{b, a})
	assert.Equal(t, d1, d2)

	b.Scope = domain.ScopeRuntime
	assert.NotEqual(t, d1, domain.SpecsDigest([]domain.DependencySpec{a, b}))
}
