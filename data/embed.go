// Package data embeds the bundled Finnish dictionary so that an engine can
// be created without any dictionary installed on the system.
package data

import "embed"

// FS holds the bundled dictionary packages, one mor-<variant> directory each.
//
//go:embed mor-standard
var FS embed.FS
