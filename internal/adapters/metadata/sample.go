package metadata

import "go.trai.ch/jx/internal/core/domain"

// SampleRepositoryURL selects SampleTable as a repository in settings files.
const SampleRepositoryURL = "builtin:sample"

type sampleEdge struct {
	group, artifact, version string
	scope                    domain.Scope
}

var sampleEdges = map[string][]sampleEdge{
	"org.springframework:spring-core": {
		{"org.springframework", "spring-jcl", "5.3.0", domain.ScopeCompile},
	},
	"org.springframework:spring-beans": {
		{"org.springframework", "spring-core", "5.3.0", domain.ScopeCompile},
	},
	"org.springframework:spring-context": {
		{"org.springframework", "spring-core", "5.3.0", domain.ScopeCompile},
		{"org.springframework", "spring-beans", "5.3.0", domain.ScopeCompile},
	},
	"org.springframework:spring-web": {
		{"org.springframework", "spring-core", "5.3.0", domain.ScopeCompile},
		{"org.springframework", "spring-beans", "5.3.0", domain.ScopeCompile},
		{"org.springframework", "spring-context", "5.3.0", domain.ScopeCompile},
	},
	"org.springframework.boot:spring-boot-starter": {
		{"org.springframework.boot", "spring-boot", "2.7.0", domain.ScopeCompile},
		{"org.springframework.boot", "spring-boot-autoconfigure", "2.7.0", domain.ScopeCompile},
		{"org.springframework.boot", "spring-boot-starter-logging", "2.7.0", domain.ScopeCompile},
		{"org.springframework", "spring-core", "5.3.0", domain.ScopeCompile},
	},
	"com.fasterxml.jackson.core:jackson-databind": {
		{"com.fasterxml.jackson.core", "jackson-core", "2.13.0", domain.ScopeCompile},
		{"com.fasterxml.jackson.core", "jackson-annotations", "2.13.0", domain.ScopeCompile},
	},
	"org.hibernate:hibernate-core": {
		{"org.hibernate.common", "hibernate-commons-annotations", "5.1.2", domain.ScopeCompile},
		{"org.jboss.logging", "jboss-logging", "3.4.1", domain.ScopeCompile},
		{"org.javassist", "javassist", "3.27.0", domain.ScopeCompile},
		{"antlr", "antlr", "2.7.7", domain.ScopeCompile},
	},
	"junit:junit": {
		{"org.hamcrest", "hamcrest-core", "1.3", domain.ScopeCompile},
	},
	"org.mockito:mockito-core": {
		{"org.objenesis", "objenesis", "3.2", domain.ScopeCompile},
	},
	"org.mockito:mockito-junit-jupiter": {
		{"org.mockito", "mockito-core", "4.5.1", domain.ScopeCompile},
		{"org.junit.jupiter", "junit-jupiter-api", "5.8.2", domain.ScopeCompile},
	},
	"ch.qos.logback:logback-classic": {
		{"ch.qos.logback", "logback-core", "1.2.11", domain.ScopeCompile},
		{"org.slf4j", "slf4j-api", "1.7.36", domain.ScopeCompile},
	},
	"org.apache.commons:commons-lang3": {
		{"org.apache.commons", "commons-text", "1.9", domain.ScopeCompile},
	},
}

var sampleVersions = map[string][]string{
	"org.springframework:spring-core":              {"5.2.9.RELEASE", "5.3.0", "6.0.0-M1"},
	"org.springframework:spring-web":               {"5.3.0"},
	"org.springframework.boot:spring-boot-starter": {"2.6.8", "2.7.0"},
	"com.fasterxml.jackson.core:jackson-databind":  {"2.12.7", "2.13.0"},
	"junit:junit":                                  {"4.12", "4.13.2"},
	"org.slf4j:slf4j-api":                          {"1.7.36", "2.0.9"},
	"ch.qos.logback:logback-classic":               {"1.2.11"},
}

// SampleTable returns a small table of well known Java libraries. Coordinates it does not
// know are treated as leaves, so it can resolve any project without network access.
func SampleTable() *Static {
	s := NewStatic()
	s.unknownAsLeaf = true
	for key, edges := range sampleEdges {
		deps := make([]domain.DependencySpec, 0, len(edges))
		for _, e := range edges {
			spec := domain.NewDependencySpec(domain.NewCoordinate(e.group, e.artifact, e.version))
			spec.Scope = e.scope
			deps = append(deps, spec)
		}
		s.deps[key] = deps
	}
	for key, versions := range sampleVersions {
		s.versions[key] = versions
	}
	return s
}
