package domain

import "path/filepath"

const (
	// JxDirName is the name of the per-user and per-project metadata directory.
	JxDirName = ".jx"

	// CacheDirName is the name of the artifact cache directory inside JxDirName.
	CacheDirName = "cache"

	// SettingsFileName is the name of the tool settings file inside JxDirName.
	SettingsFileName = "settings.yaml"

	// NativeConfigFileName is the name of the native project configuration file.
	NativeConfigFileName = "jx.toml"

	// MavenConfigFileName is the name of the Maven project descriptor.
	MavenConfigFileName = "pom.xml"

	// GradleConfigFileName is the name of the Gradle build script.
	GradleConfigFileName = "build.gradle"

	// LockFileName is the default name of the lock file.
	LockFileName = "jx.lock"

	// LibDirName is the default directory installed jars are copied into.
	LibDirName = "lib"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the artifact cache location below the given home directory.
func DefaultCachePath(home string) string {
	return filepath.Join(home, JxDirName, CacheDirName)
}

// UserSettingsPath returns the per-user settings file below the given home directory.
func UserSettingsPath(home string) string {
	return filepath.Join(home, JxDirName, SettingsFileName)
}

// ProjectSettingsPath returns the per-project settings file below the project directory.
func ProjectSettingsPath(dir string) string {
	return filepath.Join(dir, JxDirName, SettingsFileName)
}
