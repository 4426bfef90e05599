// Package envs finds the folder that holds Python virtual environments,
// lists the environments inside it, and creates new ones through an external
// builder. Existing environments are never removed or renamed.
package envs
