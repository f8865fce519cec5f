// Package projectinfo reports the toolchain and module dependencies compiled
// into the running binary.
package projectinfo

import (
	"cmp"
	"runtime"
	"runtime/debug"
	"slices"
)

// Module is one dependency and its resolved version.
type Module struct {
	Path    string
	Version string
}

// Info describes the running build.
type Info struct {
	GoVersion string
	Main      string
	Modules   []Module
}

// Read returns build information for the current binary.
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{GoVersion: runtime.Version()}
	}
	return FromBuildInfo(bi)
}

// FromBuildInfo converts bi, following replace directives and sorting by path.
func FromBuildInfo(bi *debug.BuildInfo) Info {
	if bi == nil {
		return Info{GoVersion: runtime.Version()}
	}
	info := Info{GoVersion: bi.GoVersion, Main: bi.Main.Path}
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	for _, dep := range bi.Deps {
		if dep == nil {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		version := dep.Version
		if version == "" {
			version = "(devel)"
		}
		info.Modules = append(info.Modules, Module{Path: dep.Path, Version: version})
	}
	slices.SortFunc(info.Modules, func(a, b Module) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return info
}

// ModuleCount returns the number of dependencies.
func (i Info) ModuleCount() int {
	return len(i.Modules)
}
