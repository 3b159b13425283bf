package version

import "fmt"

var GitCommit string
var GitTag string

// String formats the build version, falling back to "dev" for builds made
// without linker flags.
func String() string {
	tag := GitTag
	if tag == "" {
		tag = "dev"
	}
	if GitCommit == "" {
		return fmt.Sprintf("gomarc %s", tag)
	}
	return fmt.Sprintf("gomarc %s (%s)", tag, GitCommit)
}
