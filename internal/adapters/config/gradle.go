package config

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	gradleIndent           = "    "
	gradleSettingsFileName = "settings.gradle"
)

var (
	gradleBlockStart = regexp.MustCompile(`^\s*dependencies\s*\{\s*$`)
	gradleDependency = regexp.MustCompile(`^\s*(\w+)\s*\(?\s*['"]([^'"$]+)['"]\s*\)?\s*$`)
)

var gradleScopes = map[string]domain.Scope{
	"implementation":     domain.ScopeCompile,
	"api":                domain.ScopeCompile,
	"compile":            domain.ScopeCompile,
	"runtimeOnly":        domain.ScopeRuntime,
	"runtime":            domain.ScopeRuntime,
	"testImplementation": domain.ScopeTest,
	"testRuntimeOnly":    domain.ScopeTest,
	"testCompile":        domain.ScopeTest,
	"compileOnly":        domain.ScopeProvided,
}

var gradleConfigurations = map[domain.Scope]string{
	domain.ScopeCompile:  "implementation",
	domain.ScopeRuntime:  "runtimeOnly",
	domain.ScopeTest:     "testImplementation",
	domain.ScopeProvided: "compileOnly",
}

// Gradle reads and writes string notation dependencies in the top level
// dependencies { ... } block of build.gradle. Other statements in the block are kept.
type Gradle struct{}

// NewGradle creates a Gradle adapter.
func NewGradle() *Gradle {
	return &Gradle{}
}

// Name returns the handled file name.
func (g *Gradle) Name() string {
	return domain.GradleConfigFileName
}

// Detect reports whether dir contains build.gradle.
func (g *Gradle) Detect(dir string) bool {
	return exists(filepath.Join(dir, g.Name()))
}

// ReadSpecs returns the declared dependencies in file order.
func (g *Gradle) ReadSpecs(dir string) ([]domain.DependencySpec, error) {
	data, path, err := readProjectFile(dir, g.Name())
	if err != nil {
		return nil, err
	}

	doc, err := scanGradle(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if !doc.found {
		return nil, nil
	}

	var specs []domain.DependencySpec
	for _, line := range doc.lines[doc.start+1 : doc.end] {
		spec, ok, err := gradleSpec(line)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if ok {
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

func gradleSpec(line string) (domain.DependencySpec, bool, error) {
	m := gradleDependency.FindStringSubmatch(line)
	if m == nil {
		return domain.DependencySpec{}, false, nil
	}
	scope, ok := gradleScopes[m[1]]
	if !ok {
		return domain.DependencySpec{}, false, nil
	}

	c, err := parseDeclared(m[2])
	if err != nil {
		return domain.DependencySpec{}, false, err
	}
	spec := domain.NewDependencySpec(c)
	spec.Scope = scope
	return spec, true, nil
}

// Create writes build.gradle with an empty dependencies block, and settings.gradle naming the project.
func (g *Gradle) Create(dir, name string) error {
	build := strings.Join([]string{
		"plugins {",
		gradleIndent + "id 'java'",
		"}",
		"",
		"group = 'com.example'",
		"version = '" + initialVersion + "'",
		"",
		"repositories {",
		gradleIndent + "mavenCentral()",
		"}",
		"",
		"dependencies {",
		"}",
		"",
	}, "\n")
	settings := "rootProject.name = '" + strings.ReplaceAll(name, "'", "\\'") + "'\n"
	return createProjectFiles(dir, g.Name(), build, gradleSettingsFileName, settings)
}

// WriteSpecs regenerates the dependency lines of the block, appending a new block when none exists.
func (g *Gradle) WriteSpecs(dir string, specs []domain.DependencySpec) error {
	data, path, err := readProjectFile(dir, g.Name())
	if err != nil {
		return err
	}

	generated := make([]string, 0, len(specs))
	for _, s := range specs {
		line, err := gradleLine(s)
		if err != nil {
			return zerr.With(err, "path", path)
		}
		generated = append(generated, line)
	}

	doc, err := scanGradle(data)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	var out []string
	if doc.found {
		out = append(out, doc.lines[:doc.start+1]...)
		for _, line := range doc.lines[doc.start+1 : doc.end] {
			if _, ok, _ := gradleSpec(line); !ok {
				out = append(out, line)
			}
		}
		out = append(out, generated...)
		out = append(out, doc.lines[doc.end:]...)
	} else {
		out = append(out, doc.lines...)
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, "dependencies {")
		out = append(out, generated...)
		out = append(out, "}")
	}

	return writeProjectFile(path, []byte(strings.Join(out, "\n")+"\n"))
}

func gradleLine(s domain.DependencySpec) (string, error) {
	scope := s.Scope
	if scope == "" {
		scope = domain.ScopeCompile
	}
	configuration, ok := gradleConfigurations[scope]
	if !ok || s.Optional || len(s.Exclusions) > 0 {
		return "", zerr.With(
			zerr.Wrap(domain.ErrUnsupportedFormat, "dependency cannot be expressed in build.gradle string notation"),
			"dependency", s.Key(),
		)
	}
	notation := s.Coordinate.ArtifactKey()
	if s.Coordinate.Version != "" {
		notation += ":" + s.Coordinate.Version
		if s.Coordinate.Classifier != "" {
			notation += ":" + s.Coordinate.Classifier
		}
	}
	return gradleIndent + configuration + " '" + notation + "'", nil
}

type gradleDoc struct {
	lines      []string
	found      bool
	start, end int
}

// scanGradle locates the top level dependencies block; start is the opening line and end the closing brace.
func scanGradle(data []byte) (gradleDoc, error) {
	var doc gradleDoc
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		doc.lines = append(doc.lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return gradleDoc{}, zerr.Wrap(err, "failed to read build.gradle")
	}

	depth := 0
	for i, line := range doc.lines {
		if !doc.found && depth == 0 && gradleBlockStart.MatchString(line) {
			doc.found = true
			doc.start = i
			depth = 1
			continue
		}
		depth += braceDelta(line)
		if doc.found && doc.end == 0 && depth == 0 {
			doc.end = i
			return doc, nil
		}
		if depth < 0 {
			depth = 0
		}
	}
	if doc.found {
		// Unterminated block: treat the rest of the file as its body.
		doc.end = len(doc.lines)
	}
	return doc, nil
}

func braceDelta(line string) int {
	delta := 0
	var quote rune
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '{':
			delta++
		case r == '}':
			delta--
		}
	}
	return delta
}
