// Package config provides the layered settings store for Ursa.
//
// Configuration is organized as sections of named settings. Four layers
// contribute sections - built-in defaults, the user coafile, the project
// coafile, and command-line arguments - merged in that order so that higher
// layers win per setting. After the final merge every section except
// "default" falls back to the "default" section for unset lookups.
package config
