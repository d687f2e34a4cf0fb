package version

// VERSION is the application version, overridable at build time with
// -ldflags "-X github.com/a7medJamal/gml/version.VERSION=...".
var VERSION = "0.1.0-dev"
