// Package index generates and reads the emoji index artifacts.
//
// Two files are produced in the emoji directory, always together:
//
//   - list.json: every remote emoji as {id, name, identifier}, sorted by name.
//   - emojis.d.ts: a TypeScript declaration with the closed union of valid
//     names (or `never` when there are none) and a record type.
//
// The pair is regenerated wholesale from the authoritative remote list on
// every run; nothing is merged from a previous generation. Both files are
// staged as temporaries and renamed into place only after both were written.
//
// # Registry
//
// Registry is a read-only, explicitly constructed lookup over list.json.
// Callers own their instances; there is no package-level state.
//
//	reg, err := index.LoadRegistry(afero.NewOsFs(), "./emojis")
//	id := reg.Identifier("happy")
//
// # Publishing
//
// Publisher mirrors a freshly written pair into object storage for consumers
// that cannot read the local directory.
package index
