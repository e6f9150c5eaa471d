package config

import (
	"go.trai.ch/jx/internal/core/domain"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Detector picks the first adapter whose project file exists.
type Detector struct {
	adapters []ports.ConfigAdapter
}

// NewDetector creates a Detector that checks jx.toml, pom.xml and build.gradle in that order.
func NewDetector() *Detector {
	return NewDetectorWith(NewNative(), NewMaven(), NewGradle())
}

// NewDetectorWith creates a Detector over the given adapters, checked in order.
func NewDetectorWith(adapters ...ports.ConfigAdapter) *Detector {
	return &Detector{adapters: adapters}
}

// Detect returns the adapter for the project in dir.
func (d *Detector) Detect(dir string) (ports.ConfigAdapter, error) {
	for _, a := range d.adapters {
		if a.Detect(dir) {
			return a, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrNoProjectConfig, "no jx.toml, pom.xml or build.gradle found"), "dir", dir)
}

// Lookup returns the adapter handling the file name.
func (d *Detector) Lookup(name string) (ports.ConfigAdapter, error) {
	for _, a := range d.adapters {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "no adapter for project file"), "file", name)
}
