// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle of a run: load circuit files,
// execute every circuit on the mocked backend, and write the reports,
// decoupled from any specific entrypoint like a CLI.
package app
