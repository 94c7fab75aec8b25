// Package conf contains the constants that are used across packages for
// version information.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSION is the version of the javacheck application.
	VERSION = "javacheck 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v Copyright (C) %v", VERSION, time.Now().Year())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
