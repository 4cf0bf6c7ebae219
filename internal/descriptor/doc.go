// Package descriptor reads and validates the .zproject file that identifies a
// project to the engine tooling. The file is YAML with a single Project
// mapping; validation runs against an embedded JSON Schema and also catches
// placeholder tokens that were never substituted.
package descriptor
