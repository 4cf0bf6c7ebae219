// Package cli defines the Cobra command tree for the zeo CLI. Each file in
// this package registers one top-level command (new, setup, doctor, etc.)
// with the root command. Command implementations delegate to internal
// packages for the actual work and only handle flags, prompts, and output.
package cli
