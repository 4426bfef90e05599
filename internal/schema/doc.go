// Package schema validates generated project files (YAML settings, JSON
// sample data) against JSON Schemas embedded in the binary.
package schema
