// Package chaindb persists sampling runs in a SQLite database so that a
// long fit survives interruption and can be resumed or audited later.
//
// 🚀 What & why
//
//   - A Store owns one database file and holds any number of runs.
//   - A Run binds a walker ensemble to a row in the runs table and
//     implements the sampler's Checkpointer, writing every ensemble
//     position as it is produced.
//   - LastStep recovers the most recent ensemble so a resumed fit
//     continues from where the previous process stopped.
//
// ✨ Guarantees
//
//   - Each SaveStep is a single transaction: a crash mid-step leaves the
//     database at the previous complete step, never a torn ensemble.
//   - Run identifiers are unique; reusing one returns ErrRunExists.
//   - Walker positions round-trip exactly (float64 bit patterns are
//     stored verbatim).
//
// ⚙️ Usage
//
//	store, err := chaindb.Open("runs.db")
//	if err != nil { ... }
//	defer store.Close()
//
//	run, err := store.CreateRun("", walkers, dim, seed)
//	opts.Checkpoint = run
//	chain, err := sampler.Run(ctx, init)
//	run.SetState(s.State().String())
package chaindb
