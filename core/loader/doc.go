// Package loader registers HTTP features on the fiber app.
//
// A Feature names itself, decides whether it is enabled from its own config and
// mounts its routes in Load. The serve command registers every feature with a
// Manager and calls LoadAll once; disabled features are skipped silently and
// Names reports what ended up mounted.
//
//	mgr := loader.NewManager()
//	mgr.Register(weapons.NewFeature(cfg.Table, invoker, log))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
