// Package parser reads and writes the textual configuration surfaces:
// coafiles (section-delimited key=value text) and command-line argument
// lists. Both produce config.SectionDict values; the writer persists one
// back to disk.
package parser
