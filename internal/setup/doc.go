// Package setup prepares a freshly cloned engine repository for building.
//
// Run executes one linear flow and records a typed StepResult per step:
//
//  1. Python interpreter and required pip packages (installed on demand)
//  2. Vulkan SDK presence and version
//  3. repository root resolution from an explicit base path
//  4. git submodule update
//  5. optional registration of the installation root
//  6. the build-file generator, either the repository script or premake
//     with an explicit toolchain
//
// Every external command goes through a runner.Runner. Nothing changes the
// process working directory. Without Options.FailFast a failing step is
// recorded and the flow continues; with it, Run stops and returns
// ErrStepFailed.
package setup
