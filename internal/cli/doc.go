// Package cli defines the Cobra command tree for the pyboot CLI. Each file
// holds a newXCmd factory for one top-level command; newRootCmd assembles a
// fresh tree per execution. Commands resolve flags, config, and prompts, then
// delegate to the envs, activation, and scaffold packages for the actual work.
package cli
