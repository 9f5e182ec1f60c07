// Package services contains the application services that drive the
// pipeline: the build orchestrator walking source files into the store,
// and the verifier re-querying the result. Services depend on ports only;
// concrete adapters are wired in by the CLI.
package services
