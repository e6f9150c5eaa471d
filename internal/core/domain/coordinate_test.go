package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKey     string
		wantVersion string
		wantErr     bool
	}{
		{name: "pinned", input: "g:a:1.0", wantKey: "g:a:1.0", wantVersion: "1.0"},
		{name: "unpinned", input: "g:a", wantKey: "g:a"},
		{name: "surrounding whitespace", input: "  org.slf4j:slf4j-api:2.0.9 ", wantKey: "org.slf4j:slf4j-api:2.0.9", wantVersion: "2.0.9"},
		{name: "single field", input: "g", wantErr: true},
		{name: "four fields", input: "g:a:1.0:extra", wantErr: true},
		{name: "empty group", input: ":a:1.0", wantErr: true},
		{name: "empty version", input: "g:a:", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.ParseCoordinate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidCoordinate))

				var zErr *zerr.Error
				require.ErrorAs(t, err, &zErr)
				assert.Equal(t, tt.input, zErr.Metadata()["input"])
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, c.Key())
			assert.Equal(t, tt.wantVersion, c.Version)
			assert.Equal(t, tt.wantVersion != "", c.HasVersion())
		})
	}
}

func TestParseKey(t *testing.T) {
	c, err := domain.ParseKey("com.google.guava:guava:32.1.3-jre:sources")
	require.NoError(t, err)
	assert.Equal(t, "com.google.guava", c.Group.String())
	assert.Equal(t, "guava", c.Artifact.String())
	assert.Equal(t, "32.1.3-jre", c.Version)
	assert.Equal(t, "sources", c.Classifier)
	assert.Equal(t, "com.google.guava:guava:32.1.3-jre:sources", c.Key())

	_, err = domain.ParseKey("g:a")
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestCoordinate_Identity(t *testing.T) {
	a := domain.NewCoordinate("org.springframework", "spring-core", "5.3.0")
	b := domain.NewCoordinate("org.springframework", "spring-core", "5.3.0")
	c := domain.NewCoordinate("org.springframework", "spring-core", "6.0.0")

	assert.Equal(t, a, b)
	assert.True(t, a.SameArtifact(c))
	assert.True(t, a.ConflictsWith(c))
	assert.False(t, a.ConflictsWith(b))
	assert.Equal(t, "org.springframework:spring-core", a.ArtifactKey())

	set := map[domain.Coordinate]bool{a: true}
	assert.True(t, set[b])
}

func TestCoordinate_Paths(t *testing.T) {
	c := domain.NewCoordinate("org.springframework", "spring-core", "5.3.0")
	assert.Equal(t, "spring-core-5.3.0.jar", c.Filename())
	assert.Equal(t, "org/springframework/spring-core/5.3.0/spring-core-5.3.0.pom", c.RepositoryPath("pom"))

	sources := c.WithClassifier("sources")
	assert.Equal(t, "spring-core-5.3.0-sources.jar", sources.Filename())
	assert.Equal(t, "org.springframework:spring-core:5.3.0:sources", sources.Key())
}
