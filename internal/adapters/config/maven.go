package config

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

const pomIndentUnit = "    "

type pomProject struct {
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Scope      string         `xml:"scope"`
	Classifier string         `xml:"classifier"`
	Optional   string         `xml:"optional"`
	Exclusions []pomExclusion `xml:"exclusions>exclusion"`
}

type pomExclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// Maven reads and writes the project level <dependencies> block of pom.xml.
// Versions inherited from a parent or given as ${property} read as unset; a
// property version is written back as found while the spec stays unpinned.
type Maven struct{}

// NewMaven creates a Maven adapter.
func NewMaven() *Maven {
	return &Maven{}
}

// Name returns the handled file name.
func (m *Maven) Name() string {
	return domain.MavenConfigFileName
}

// Detect reports whether dir contains pom.xml.
func (m *Maven) Detect(dir string) bool {
	return exists(filepath.Join(dir, m.Name()))
}

// ReadSpecs returns the declared dependencies in file order.
func (m *Maven) ReadSpecs(dir string) ([]domain.DependencySpec, error) {
	data, path, err := readProjectFile(dir, m.Name())
	if err != nil {
		return nil, err
	}

	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse pom.xml"), "path", path)
	}

	specs := make([]domain.DependencySpec, 0, len(project.Dependencies))
	for _, d := range project.Dependencies {
		spec, err := d.spec()
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (d pomDependency) spec() (domain.DependencySpec, error) {
	group := strings.TrimSpace(d.GroupID)
	artifact := strings.TrimSpace(d.ArtifactID)
	if group == "" || artifact == "" {
		return domain.DependencySpec{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidCoordinate, "dependency is missing groupId or artifactId"),
			"input", group+":"+artifact,
		)
	}

	version := strings.TrimSpace(d.Version)
	if isPropertyVersion(version) {
		version = ""
	}

	spec := domain.NewDependencySpec(domain.NewCoordinate(group, artifact, version).
		WithClassifier(strings.TrimSpace(d.Classifier)))

	scope, err := domain.ParseScope(strings.TrimSpace(d.Scope))
	if err != nil {
		return domain.DependencySpec{}, zerr.With(err, "dependency", spec.Coordinate.ArtifactKey())
	}
	spec.Scope = scope
	spec.Optional = strings.EqualFold(strings.TrimSpace(d.Optional), "true")

	for _, e := range d.Exclusions {
		spec.Exclusions = append(spec.Exclusions,
			domain.NewExclusion(strings.TrimSpace(e.GroupID), strings.TrimSpace(e.ArtifactID)))
	}
	return spec, nil
}

func isPropertyVersion(version string) bool {
	return strings.Contains(version, "${")
}

// unpinnedKey identifies a declaration regardless of its version.
func (d pomDependency) unpinnedKey() string {
	return domain.NewCoordinate(strings.TrimSpace(d.GroupID), strings.TrimSpace(d.ArtifactID), "").
		WithClassifier(strings.TrimSpace(d.Classifier)).Key()
}

// propertyVersions maps each declaration whose version is a ${property} to that raw text.
func propertyVersions(data []byte) (map[string]string, error) {
	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return nil, zerr.Wrap(err, "failed to parse pom.xml")
	}
	versions := make(map[string]string)
	for _, d := range project.Dependencies {
		if v := strings.TrimSpace(d.Version); isPropertyVersion(v) {
			versions[d.unpinnedKey()] = v
		}
	}
	return versions, nil
}

// Create writes a minimal pom.xml for artifact name with an empty <dependencies> block.
func (m *Maven) Create(dir, name string) error {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString("<project>\n")
	writeElement(&b, pomIndentUnit, "modelVersion", "4.0.0")
	writeElement(&b, pomIndentUnit, "groupId", "com.example")
	writeElement(&b, pomIndentUnit, "artifactId", name)
	writeElement(&b, pomIndentUnit, "version", initialVersion)
	b.WriteString(pomIndentUnit)
	writeDependencyBlock(&b, nil, nil, pomIndentUnit)
	b.WriteString("\n</project>\n")
	return createProjectFiles(dir, m.Name(), b.String())
}

// WriteSpecs replaces the project level <dependencies> block, or inserts one before </project>.
// The rest of the document is kept byte for byte.
func (m *Maven) WriteSpecs(dir string, specs []domain.DependencySpec) error {
	data, path, err := readProjectFile(dir, m.Name())
	if err != nil {
		return err
	}

	span, err := locateDependencies(data)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	properties, err := propertyVersions(data)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	var out bytes.Buffer
	out.Grow(len(data) + len(specs)*256)
	if span.found {
		base := lineIndent(data, span.start)
		out.Write(data[:span.start])
		writeDependencyBlock(&out, specs, properties, base)
		out.Write(data[span.end:])
	} else {
		out.Write(data[:span.projectEnd])
		out.WriteString(pomIndentUnit)
		writeDependencyBlock(&out, specs, properties, pomIndentUnit)
		out.WriteString("\n")
		out.Write(data[span.projectEnd:])
	}
	return writeProjectFile(path, out.Bytes())
}

type pomSpan struct {
	found      bool
	start, end int64
	projectEnd int64
}

func locateDependencies(data []byte) (pomSpan, error) {
	span := pomSpan{start: -1, projectEnd: -1}
	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return span, zerr.Wrap(err, "failed to parse pom.xml")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 && t.Name.Local == "dependencies" && !span.found {
				span.start = before
			}
			depth++
		case xml.EndElement:
			depth--
			switch {
			case depth == 1 && t.Name.Local == "dependencies" && span.start >= 0 && !span.found:
				span.end = dec.InputOffset()
				span.found = true
			case depth == 0 && t.Name.Local == "project":
				span.projectEnd = before
			}
		}
	}

	if !span.found && span.projectEnd < 0 {
		return span, zerr.Wrap(domain.ErrUnsupportedFormat, "pom.xml has no <project> element")
	}
	return span, nil
}

func lineIndent(data []byte, pos int64) string {
	i := pos
	for i > 0 && (data[i-1] == ' ' || data[i-1] == '\t') {
		i--
	}
	return string(data[i:pos])
}

func writeDependencyBlock(out *bytes.Buffer, specs []domain.DependencySpec, properties map[string]string, base string) {
	if len(specs) == 0 {
		out.WriteString("<dependencies/>")
		return
	}

	dep := base + pomIndentUnit
	field := dep + pomIndentUnit

	out.WriteString("<dependencies>\n")
	for _, s := range specs {
		out.WriteString(dep + "<dependency>\n")
		writeElement(out, field, "groupId", s.Coordinate.Group.String())
		writeElement(out, field, "artifactId", s.Coordinate.Artifact.String())
		switch {
		case s.Coordinate.Version != "":
			writeElement(out, field, "version", s.Coordinate.Version)
		case properties[s.Coordinate.Key()] != "":
			writeElement(out, field, "version", properties[s.Coordinate.Key()])
		}
		if s.Coordinate.Classifier != "" {
			writeElement(out, field, "classifier", s.Coordinate.Classifier)
		}
		if s.Scope != "" && s.Scope != domain.ScopeCompile {
			writeElement(out, field, "scope", s.Scope.String())
		}
		if s.Optional {
			writeElement(out, field, "optional", "true")
		}
		if len(s.Exclusions) > 0 {
			exclusion := field + pomIndentUnit
			out.WriteString(field + "<exclusions>\n")
			for _, e := range s.Exclusions {
				out.WriteString(exclusion + "<exclusion>\n")
				writeElement(out, exclusion+pomIndentUnit, "groupId", e.Group.String())
				writeElement(out, exclusion+pomIndentUnit, "artifactId", e.Artifact.String())
				out.WriteString(exclusion + "</exclusion>\n")
			}
			out.WriteString(field + "</exclusions>\n")
		}
		out.WriteString(dep + "</dependency>\n")
	}
	out.WriteString(base + "</dependencies>")
}

func writeElement(out *bytes.Buffer, indent, name, value string) {
	out.WriteString(indent + "<" + name + ">")
	_ = xml.EscapeText(out, []byte(value))
	out.WriteString("</" + name + ">\n")
}
