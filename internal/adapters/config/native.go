package config

import (
	"bytes"
	"maps"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dependenciesKey = "dependencies"
	projectKey      = "project"

	// initialVersion is the version given to newly created projects.
	initialVersion = "0.1.0"
)

// Native reads and writes the [dependencies] table of jx.toml. Every other table is preserved.
//
//	[dependencies]
//	"org.slf4j:slf4j-api" = "2.0.9"
//	"org.junit.jupiter:junit-jupiter" = { version = "5.10.1", scope = "test" }
type Native struct{}

// NewNative creates a Native adapter.
func NewNative() *Native {
	return &Native{}
}

// Name returns the handled file name.
func (n *Native) Name() string {
	return domain.NativeConfigFileName
}

// Detect reports whether dir contains jx.toml.
func (n *Native) Detect(dir string) bool {
	return exists(filepath.Join(dir, n.Name()))
}

// ReadSpecs returns the declared dependencies sorted by key.
func (n *Native) ReadSpecs(dir string) ([]domain.DependencySpec, error) {
	data, path, err := readProjectFile(dir, n.Name())
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse jx.toml"), "path", path)
	}

	deps, ok := raw[dependenciesKey].(map[string]any)
	if !ok {
		return nil, nil
	}

	specs := make([]domain.DependencySpec, 0, len(deps))
	for _, key := range slices.Sorted(maps.Keys(deps)) {
		spec, err := nativeSpec(key, deps[key])
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func nativeSpec(key string, value any) (domain.DependencySpec, error) {
	c, err := domain.ParseCoordinate(key)
	if err != nil {
		return domain.DependencySpec{}, err
	}
	spec := domain.NewDependencySpec(c)

	switch v := value.(type) {
	case string:
		spec.Coordinate = c.WithVersion(v)
	case map[string]any:
		if version, ok := v["version"].(string); ok {
			spec.Coordinate = spec.Coordinate.WithVersion(version)
		}
		if classifier, ok := v["classifier"].(string); ok {
			spec.Coordinate = spec.Coordinate.WithClassifier(classifier)
		}
		if scope, ok := v["scope"].(string); ok {
			if spec.Scope, err = domain.ParseScope(scope); err != nil {
				return domain.DependencySpec{}, zerr.With(err, "dependency", key)
			}
		}
		if optional, ok := v["optional"].(bool); ok {
			spec.Optional = optional
		}
		if list, ok := v["exclusions"].([]any); ok {
			for _, item := range list {
				s, _ := item.(string)
				e, err := domain.ParseExclusion(s)
				if err != nil {
					return domain.DependencySpec{}, zerr.With(err, "dependency", key)
				}
				spec.Exclusions = append(spec.Exclusions, e)
			}
		}
	default:
		return domain.DependencySpec{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "dependency must be a version string or a table"), "dependency", key)
	}
	return spec, nil
}

// Create writes a jx.toml with a [project] table and an empty [dependencies] table.
func (n *Native) Create(dir, name string) error {
	doc := map[string]any{
		projectKey:      map[string]any{"name": name, "version": initialVersion},
		dependenciesKey: map[string]any{},
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "failed to encode jx.toml")
	}
	return createProjectFiles(dir, n.Name(), buf.String())
}

// WriteSpecs replaces the [dependencies] table. A dependency without scope, classifier,
// exclusions or optional flag is written in the short "g:a" = "v" form.
func (n *Native) WriteSpecs(dir string, specs []domain.DependencySpec) error {
	data, path, err := readProjectFile(dir, n.Name())
	if err != nil {
		return err
	}

	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse jx.toml"), "path", path)
	}

	deps := make(map[string]any, len(specs))
	for _, s := range specs {
		deps[s.Coordinate.ArtifactKey()] = nativeValue(s)
	}
	raw[dependenciesKey] = deps

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(raw); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode jx.toml"), "path", path)
	}
	return writeProjectFile(path, buf.Bytes())
}

func nativeValue(s domain.DependencySpec) any {
	short := (s.Scope == "" || s.Scope == domain.ScopeCompile) &&
		s.Coordinate.Classifier == "" && !s.Optional && len(s.Exclusions) == 0
	if short {
		return s.Coordinate.Version
	}

	table := map[string]any{
		"version": s.Coordinate.Version,
		"scope":   s.Scope.String(),
	}
	if s.Coordinate.Classifier != "" {
		table["classifier"] = s.Coordinate.Classifier
	}
	if s.Optional {
		table["optional"] = true
	}
	if len(s.Exclusions) > 0 {
		table["exclusions"] = s.ExclusionKeys()
	}
	return table
}
