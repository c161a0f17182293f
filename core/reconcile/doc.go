// Package reconcile makes the application emojis registered on Discord match
// the image files in a local directory.
//
// A run is a fixed sequence of steps with no way back:
//
//	START → IDENTIFY → LISTED → DIFFED → DELETING → CREATING → REINDEXING → DONE
//
// Only START (missing credential, unreadable directory) and IDENTIFY
// (identity or list call failed) can abort. Once the remote truth is known,
// every delete and create is isolated: a failure is recorded as an
// ItemResult, counted, logged, and the run moves on. Deletes all run before
// creates, each in ascending name order, so a name can be removed and
// re-uploaded in the same run.
//
// After applying, the remote list is fetched again and handed to the index
// writer. The fresh list, not the pre-apply snapshot, is what gets indexed.
//
// # Diff
//
// Diff is the pure core of the package: local and remote name sets in,
// sorted to-create / to-delete / kept sequences out.
//
// # Usage
//
//	engine := reconcile.NewEngine(reconcile.Deps{
//	    Clients: func(token string) discord.Client { return discord.NewClient(cfg.Discord, token) },
//	    Scanner: inventory.NewScanner(fs, cfg.Sync.Ignore),
//	    Writer:  index.NewWriter(fs),
//	    Logger:  log,
//	})
//	outcome, err := engine.Run(ctx, reconcile.Spec{Dir: "./emojis", GenerateIndex: true, Credential: token})
//	if outcome != nil && outcome.HadFailures() {
//	    os.Exit(1)
//	}
package reconcile
