// Package config manages user-level settings stored at ~/.pyboot/config.yaml.
// Values can be overridden with PYBOOT_* environment variables; command-line
// flags override both.
package config
