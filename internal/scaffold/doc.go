// Package scaffold creates a new game project from the engine's template
// tree. It powers the "zeo new" command: the template is merged into the
// project root, two placeholder tokens are substituted, the descriptor is
// renamed after the project, and the project-local script generator is run.
package scaffold
