// Package output provides the log printers and interaction channels used
// by the configuration resolver.
//
// Printers come in three variants - console, file, and null - selected from
// the "log_type" setting. Interactors come in two variants - console and
// null - selected from the "output" setting. Both are single-owner
// resources: the holder must Close the previous instance before replacing
// it, and the final owner closes them at the end of the run.
package output
