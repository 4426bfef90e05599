// Package platform provides cross-platform file writes and permission
// management. On Windows, Unix permission bits are ignored.
package platform
