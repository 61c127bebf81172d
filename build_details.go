package jsonref

import "fmt"

// version is overridden at release time with -ldflags; source builds
// report "dev".
var version = "dev"

// Version reports the build version.
func Version() string {
	return version
}

// UserAgent is the User-Agent string sent with outbound HTTP loads.
func UserAgent() string {
	return fmt.Sprintf("jsonref/%s", version)
}
