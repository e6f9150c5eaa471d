package metadata

import (
	"encoding/xml"
	"strings"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/zerr"
)

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Parent       pomParent       `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Managed      []pomDependency `xml:"dependencyManagement>dependencies>dependency"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomParent struct {
	GroupID string `xml:"groupId"`
	Version string `xml:"version"`
}

type pomDependency struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Scope      string         `xml:"scope"`
	Classifier string         `xml:"classifier"`
	Type       string         `xml:"type"`
	Optional   string         `xml:"optional"`
	Exclusions []pomExclusion `xml:"exclusions>exclusion"`
}

type pomExclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	*p = make(pomProperties)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var v string
			if err := d.DecodeElement(&v, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(v)
		case xml.EndElement:
			return nil
		}
	}
}

// parsePOM returns the runtime relevant dependencies declared by a POM. Test, provided,
// system, import and optional dependencies are dropped, as are coordinates whose
// placeholders cannot be filled from the POM itself.
func parsePOM(data []byte, self domain.Coordinate) ([]domain.DependencySpec, error) {
	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse pom"), "coordinate", self.Key())
	}

	props := pom.placeholders(self)
	managed := make(map[string]string, len(pom.Managed))
	for _, d := range pom.Managed {
		managed[expand(d.GroupID, props)+":"+expand(d.ArtifactID, props)] = expand(d.Version, props)
	}

	seen := make(map[string]struct{}, len(pom.Dependencies))
	specs := make([]domain.DependencySpec, 0, len(pom.Dependencies))
	for _, d := range pom.Dependencies {
		scope := strings.TrimSpace(d.Scope)
		switch scope {
		case "test", "provided", "system", "import":
			continue
		}
		if strings.EqualFold(strings.TrimSpace(d.Optional), "true") {
			continue
		}
		if t := strings.TrimSpace(d.Type); t != "" && t != "jar" && t != "bundle" {
			continue
		}

		group := expand(d.GroupID, props)
		artifact := expand(d.ArtifactID, props)
		version := expand(d.Version, props)
		if version == "" {
			version = managed[group+":"+artifact]
		}
		if unresolved(group) || unresolved(artifact) || unresolved(version) || version == "" {
			continue
		}

		c := domain.NewCoordinate(group, artifact, version).WithClassifier(expand(d.Classifier, props))
		if _, dup := seen[c.Key()]; dup {
			continue
		}
		seen[c.Key()] = struct{}{}

		spec := domain.NewDependencySpec(c)
		if scope == "runtime" {
			spec.Scope = domain.ScopeRuntime
		}
		for _, e := range d.Exclusions {
			spec.Exclusions = append(spec.Exclusions, domain.NewExclusion(expand(e.GroupID, props), expand(e.ArtifactID, props)))
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (p pomProject) placeholders(self domain.Coordinate) map[string]string {
	props := make(map[string]string, len(p.Properties)+4)
	for k, v := range p.Properties {
		props[k] = v
	}

	group := firstNonEmpty(p.GroupID, p.Parent.GroupID, self.Group.String())
	version := firstNonEmpty(p.Version, p.Parent.Version, self.Version)
	props["project.groupId"] = group
	props["project.version"] = version
	props["pom.version"] = version
	props["project.parent.version"] = p.Parent.Version
	return props
}

// expand substitutes ${name} placeholders in a single pass.
func expand(s string, props map[string]string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "${") {
		return s
	}
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		name := s[start+2 : start+end]
		b.WriteString(s[:start])
		if v, ok := props[name]; ok && v != "" {
			b.WriteString(v)
		} else {
			b.WriteString(s[start : start+end+1])
		}
		s = s[start+end+1:]
	}
}

func unresolved(s string) bool {
	return strings.Contains(s, "${")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

type mavenMetadata struct {
	Versioning struct {
		Latest   string   `xml:"latest"`
		Release  string   `xml:"release"`
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

func parseMavenMetadata(data []byte) ([]string, error) {
	var m mavenMetadata
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse maven-metadata.xml")
	}
	versions := make([]string, 0, len(m.Versioning.Versions))
	for _, v := range m.Versioning.Versions {
		if v = strings.TrimSpace(v); v != "" {
			versions = append(versions, v)
		}
	}
	return versions, nil
}
