// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (defaults, optional YAML file, ECSIGN_*
// environment variables, bound flags) and builds the concrete key store and
// key service from it, exposing them via the Wire struct for commands to use.
package app
