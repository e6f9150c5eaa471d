package config_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jx/internal/adapters/config"
	"go.trai.ch/jx/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func keys(specs []domain.DependencySpec) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Key())
	}
	return out
}

func TestDetector_Priority(t *testing.T) {
	dir := t.TempDir()
	d := config.NewDetector()

	_, err := d.Detect(dir)
	require.ErrorIs(t, err, domain.ErrNoProjectConfig)

	writeFile(t, dir, domain.GradleConfigFileName, "")
	a, err := d.Detect(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.GradleConfigFileName, a.Name())

	writeFile(t, dir, domain.MavenConfigFileName, "<project/>")
	a, err = d.Detect(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.MavenConfigFileName, a.Name())

	writeFile(t, dir, domain.NativeConfigFileName, "")
	a, err = d.Detect(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.NativeConfigFileName, a.Name())
}

func TestNative_ReadSpecs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.NativeConfigFileName, `
[project]
name = "demo"
version = "0.1.0"

[dependencies]
"org.slf4j:slf4j-api" = "2.0.9"
"org.junit.jupiter:junit-jupiter" = { version = "5.10.1", scope = "test" }
"com.google.guava:guava" = { version = "32.1.3-jre", exclusions = ["com.google.code.findbugs:jsr305"], optional = true }
`)

	specs, err := config.NewNative().ReadSpecs(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		"com.google.guava:guava:32.1.3-jre",
		"org.junit.jupiter:junit-jupiter:5.10.1",
		"org.slf4j:slf4j-api:2.0.9",
	}, keys(specs))

	assert.True(t, specs[0].Optional)
	assert.Equal(t, []string{"com.google.code.findbugs:jsr305"}, specs[0].ExclusionKeys())
	assert.Equal(t, domain.ScopeTest, specs[1].Scope)
	assert.Equal(t, domain.ScopeCompile, specs[2].Scope)
}

func TestNative_ReadSpecs_InvalidScope(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.NativeConfigFileName, `
[dependencies]
"g:a" = { version = "1.0", scope = "weird" }
`)

	_, err := config.NewNative().ReadSpecs(dir)
	require.ErrorIs(t, err, domain.ErrInvalidScope)
}

func TestNative_WriteSpecs_PreservesProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.NativeConfigFileName, `
[project]
name = "demo"

[dependencies]
"old:lib" = "1.0"
`)

	n := config.NewNative()
	test := domain.NewDependencySpec(domain.NewCoordinate("org.junit.jupiter", "junit-jupiter", "5.10.1"))
	test.Scope = domain.ScopeTest
	specs := []domain.DependencySpec{
		domain.NewDependencySpec(domain.NewCoordinate("org.slf4j", "slf4j-api", "2.0.9")),
		test,
	}
	require.NoError(t, n.WriteSpecs(dir, specs))

	content := readFile(t, dir, domain.NativeConfigFileName)
	assert.Contains(t, content, `name = "demo"`)
	assert.Contains(t, content, `"org.slf4j:slf4j-api" = "2.0.9"`)
	assert.NotContains(t, content, "old:lib")

	got, err := n.ReadSpecs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"org.junit.jupiter:junit-jupiter:5.10.1", "org.slf4j:slf4j-api:2.0.9"}, keys(got))
	assert.Equal(t, domain.ScopeTest, got[0].Scope)
}

const samplePOM = `<?xml version="1.0" encoding="UTF-8"?>
<project>
    <modelVersion>4.0.0</modelVersion>
    <groupId>com.example</groupId>
    <artifactId>demo</artifactId>
    <dependencyManagement>
        <dependencies>
            <dependency>
                <groupId>managed</groupId>
                <artifactId>bom</artifactId>
                <version>1.0</version>
            </dependency>
        </dependencies>
    </dependencyManagement>
    <dependencies>
        <dependency>
            <groupId>org.slf4j</groupId>
            <artifactId>slf4j-api</artifactId>
            <version>2.0.9</version>
        </dependency>
        <dependency>
            <groupId>junit</groupId>
            <artifactId>junit</artifactId>
            <version>4.13.2</version>
            <scope>test</scope>
            <exclusions>
                <exclusion>
                    <groupId>org.hamcrest</groupId>
                    <artifactId>hamcrest-core</artifactId>
                </exclusion>
            </exclusions>
        </dependency>
        <dependency>
            <groupId>com.example</groupId>
            <artifactId>sibling</artifactId>
            <version>${project.version}</version>
        </dependency>
    </dependencies>
    <build>
        <finalName>demo</finalName>
    </build>
</project>
`

func TestMaven_ReadSpecs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.MavenConfigFileName, samplePOM)

	specs, err := config.NewMaven().ReadSpecs(dir)
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, "org.slf4j:slf4j-api:2.0.9", specs[0].Key())
	assert.Equal(t, domain.ScopeTest, specs[1].Scope)
	assert.Equal(t, []string{"org.hamcrest:hamcrest-core"}, specs[1].ExclusionKeys())
	assert.False(t, specs[2].Coordinate.HasVersion())
	require.ErrorIs(t, specs[2].Validate(), domain.ErrMissingVersion)
}

func TestMaven_WriteSpecs_SplicesBlock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.MavenConfigFileName, samplePOM)

	m := config.NewMaven()
	spec := domain.NewDependencySpec(domain.NewCoordinate("com.fasterxml.jackson.core", "jackson-databind", "2.15.2"))
	require.NoError(t, m.WriteSpecs(dir, []domain.DependencySpec{spec}))

	content := readFile(t, dir, domain.MavenConfigFileName)
	assert.Contains(t, content, "<finalName>demo</finalName>")
	assert.Contains(t, content, "<artifactId>bom</artifactId>")
	assert.NotContains(t, content, "slf4j-api")
	assert.Contains(t, content, "    <dependencies>\n        <dependency>\n            <groupId>com.fasterxml.jackson.core</groupId>")

	got, err := m.ReadSpecs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.fasterxml.jackson.core:jackson-databind:2.15.2"}, keys(got))
}

func TestMaven_WriteSpecs_KeepsPropertyVersions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.MavenConfigFileName, samplePOM)

	m := config.NewMaven()
	specs, err := m.ReadSpecs(dir)
	require.NoError(t, err)
	specs = append(specs, domain.NewDependencySpec(domain.NewCoordinate("g", "added", "1.0")))
	require.NoError(t, m.WriteSpecs(dir, specs))

	content := readFile(t, dir, domain.MavenConfigFileName)
	assert.Contains(t, content, "<artifactId>sibling</artifactId>\n            <version>${project.version}</version>")
	assert.Contains(t, content, "<artifactId>added</artifactId>")

	got, err := m.ReadSpecs(dir)
	require.NoError(t, err)
	assert.Equal(t, keys(specs), keys(got))

	// Pinning the spec replaces the property.
	got[2].Coordinate = got[2].Coordinate.WithVersion("3.1")
	require.NoError(t, m.WriteSpecs(dir, got))
	content = readFile(t, dir, domain.MavenConfigFileName)
	assert.NotContains(t, content, "${project.version}")
	assert.Contains(t, content, "<version>3.1</version>")
}

func TestMaven_WriteSpecs_InsertsBlock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.MavenConfigFileName, "<project>\n    <artifactId>demo</artifactId>\n</project>\n")

	m := config.NewMaven()
	spec := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	spec.Scope = domain.ScopeRuntime
	require.NoError(t, m.WriteSpecs(dir, []domain.DependencySpec{spec}))

	got, err := m.ReadSpecs(dir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ScopeRuntime, got[0].Scope)
	assert.Contains(t, readFile(t, dir, domain.MavenConfigFileName), "<artifactId>demo</artifactId>")
}

const sampleGradle = `plugins {
    id 'java'
}

buildscript {
    dependencies {
        classpath 'com.example:plugin:1.0'
    }
}

dependencies {
    implementation 'org.slf4j:slf4j-api:2.0.9'
    implementation project(':core')
    testImplementation("org.junit.jupiter:junit-jupiter:5.10.1")
    runtimeOnly "org.postgresql:postgresql:42.6.0"
    compileOnly 'org.projectlombok:lombok:1.18.30'
}
`

func TestGradle_ReadSpecs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.GradleConfigFileName, sampleGradle)

	specs, err := config.NewGradle().ReadSpecs(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		"org.slf4j:slf4j-api:2.0.9",
		"org.junit.jupiter:junit-jupiter:5.10.1",
		"org.postgresql:postgresql:42.6.0",
		"org.projectlombok:lombok:1.18.30",
	}, keys(specs))

	scopes := make([]domain.Scope, 0, len(specs))
	for _, s := range specs {
		scopes = append(scopes, s.Scope)
	}
	assert.Equal(t, []domain.Scope{domain.ScopeCompile, domain.ScopeTest, domain.ScopeRuntime, domain.ScopeProvided}, scopes)
}

func TestGradle_WriteSpecs_KeepsOtherStatements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.GradleConfigFileName, sampleGradle)

	g := config.NewGradle()
	spec := domain.NewDependencySpec(domain.NewCoordinate("com.google.guava", "guava", "32.1.3-jre"))
	require.NoError(t, g.WriteSpecs(dir, []domain.DependencySpec{spec}))

	content := readFile(t, dir, domain.GradleConfigFileName)
	assert.Contains(t, content, "classpath 'com.example:plugin:1.0'")
	assert.Contains(t, content, "implementation project(':core')")
	assert.Contains(t, content, "    implementation 'com.google.guava:guava:32.1.3-jre'\n}")
	assert.NotContains(t, content, "slf4j")

	got, err := g.ReadSpecs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.google.guava:guava:32.1.3-jre"}, keys(got))
}

func TestGradle_WriteSpecs_AppendsBlock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.GradleConfigFileName, "plugins {\n    id 'java'\n}\n")

	g := config.NewGradle()
	spec := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	require.NoError(t, g.WriteSpecs(dir, []domain.DependencySpec{spec}))

	assert.Equal(t, "plugins {\n    id 'java'\n}\n\ndependencies {\n    implementation 'g:a:1.0'\n}\n",
		readFile(t, dir, domain.GradleConfigFileName))
}

func TestGradle_WriteSpecs_RejectsExclusions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.GradleConfigFileName, "")

	spec := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	spec.Exclusions = []domain.Exclusion{domain.NewExclusion("x", "y")}
	err := config.NewGradle().WriteSpecs(dir, []domain.DependencySpec{spec})
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestGradle_OverlongLineIsAnError(t *testing.T) {
	dir := t.TempDir()
	content := "// " + strings.Repeat("x", 2*1024*1024) + "\n" + sampleGradle
	writeFile(t, dir, domain.GradleConfigFileName, content)

	g := config.NewGradle()
	_, err := g.ReadSpecs(dir)
	require.ErrorIs(t, err, bufio.ErrTooLong)

	spec := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
	require.ErrorIs(t, g.WriteSpecs(dir, []domain.DependencySpec{spec}), bufio.ErrTooLong)
	assert.Equal(t, content, readFile(t, dir, domain.GradleConfigFileName))
}

func TestCreate_WritesEditableProject(t *testing.T) {
	tests := []struct {
		name    string
		adapter interface {
			Create(dir, name string) error
			ReadSpecs(dir string) ([]domain.DependencySpec, error)
			WriteSpecs(dir string, specs []domain.DependencySpec) error
		}
		contains string
	}{
		{name: "native", adapter: config.NewNative(), contains: `name = "demo"`},
		{name: "maven", adapter: config.NewMaven(), contains: "<artifactId>demo</artifactId>"},
		{name: "gradle", adapter: config.NewGradle(), contains: "mavenCentral()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "demo")
			require.NoError(t, tt.adapter.Create(dir, "demo"))

			specs, err := tt.adapter.ReadSpecs(dir)
			require.NoError(t, err)
			assert.Empty(t, specs)

			spec := domain.NewDependencySpec(domain.NewCoordinate("g", "a", "1.0"))
			require.NoError(t, tt.adapter.WriteSpecs(dir, []domain.DependencySpec{spec}))
			got, err := tt.adapter.ReadSpecs(dir)
			require.NoError(t, err)
			assert.Equal(t, []string{"g:a:1.0"}, keys(got))

			d := config.NewDetector()
			a, err := d.Detect(dir)
			require.NoError(t, err)
			assert.Contains(t, readFile(t, dir, a.Name()), tt.contains)

			require.ErrorIs(t, tt.adapter.Create(dir, "demo"), domain.ErrProjectExists)
		})
	}
}

func TestDetector_Lookup(t *testing.T) {
	d := config.NewDetector()

	a, err := d.Lookup(domain.MavenConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, domain.MavenConfigFileName, a.Name())

	_, err = d.Lookup("build.xml")
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
