package backend

import "runtime/debug"

// LibraryName identifies the primitive library serving both backends.
const LibraryName = "cloudflare/circl"

// circlModulePath is the module path looked up in the build info.
const circlModulePath = "github.com/cloudflare/circl"

// LibraryVersion reports the circl module version recorded in the binary's
// build info. It returns "unknown" when the binary was built without module
// metadata, such as from a test binary of circl itself or a GOPATH build.
func LibraryVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, dep := range info.Deps {
		if dep.Path != circlModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}

	return "unknown"
}
