// Package workspace prepares a project for emoji-sync.
//
// It creates the emoji directory, keeps the generated list out of version
// control, adds the declaration file to tsconfig.json and optionally writes
// a starter emoji-sync.yaml. Every step is idempotent and reports what it did.
package workspace
