package swapchain

// release is the version of this source tree. It is bumped when a
// version is tagged.
const release = "v0.1.0-dev"

// GitCommit is set at build time with
//
//   -ldflags "-X github.com/iov-one/swapchain.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = ""

// Version returns the release, followed by the commit when known.
func Version() string {
	if GitCommit == "" {
		return release
	}
	return release + " " + GitCommit
}
