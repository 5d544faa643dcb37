// Package domain defines the key-management types and contracts shared by the
// store, the services and the CLI. Key material itself lives in internal/crypto;
// this package only names and describes it.
package domain
