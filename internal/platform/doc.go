// Package platform isolates the host-specific details of the bootstrap flows:
// which generator scripts exist for the host, how a script is launched, how
// a persistent user environment variable is written, and file permissions.
// The engine's own tooling is Windows-first; other hosts get the equivalent
// shell scripts where the engine ships them.
package platform
