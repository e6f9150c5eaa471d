package app

import (
	"path/filepath"

	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Project templates accepted by Init.
const (
	TemplateNative = "jx"
	TemplateMaven  = "maven"
	TemplateGradle = "gradle"
)

var templateFiles = map[string]string{
	TemplateNative: domain.NativeConfigFileName,
	TemplateMaven:  domain.MavenConfigFileName,
	TemplateGradle: domain.GradleConfigFileName,
}

// InitOptions configures Init.
type InitOptions struct {
	// Dir is the directory the project is created in.
	Dir string

	// Name creates the project in the subdirectory Dir/Name when set.
	// Otherwise the project is created in Dir and named after it.
	Name string

	// Template is one of jx, maven or gradle. Defaults to jx.
	Template string
}

// InitReport describes the created project.
type InitReport struct {
	Name string
	Dir  string
	File string
}

// Init creates an empty project. It refuses to touch a directory that already holds a project file.
func (a *App) Init(opts InitOptions) (*InitReport, error) {
	template := opts.Template
	if template == "" {
		template = TemplateNative
	}
	file, ok := templateFiles[template]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "unknown project template"), "template", template)
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	name := opts.Name
	if name != "" {
		dir = filepath.Join(dir, name)
	} else {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", dir)
		}
		name = filepath.Base(abs)
	}

	if existing, err := a.detector.Detect(dir); err == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectExists, "directory already holds a project"), "file", filepath.Join(dir, existing.Name()))
	}

	adapter, err := a.detector.Lookup(file)
	if err != nil {
		return nil, err
	}
	creator, ok := adapter.(ports.ProjectCreator)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "project file cannot be created"), "file", file)
	}
	if err := creator.Create(dir, name); err != nil {
		return nil, zerr.Wrap(err, "failed to create project")
	}

	a.logger.Info("project created", "name", name, "dir", dir, "file", file)
	return &InitReport{Name: name, Dir: dir, File: file}, nil
}
