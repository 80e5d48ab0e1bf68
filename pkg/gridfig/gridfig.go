// Package gridfig holds module-level metadata shared by the CLI and
// build tooling.
package gridfig

// Version is the release version of the gridfig module.
const Version = "0.1.0"
