// Package petsprite resolves and caches the composed sprites of a virtual
// pet built with [Ebitengine].
//
// A creature's look is a [VisualState]: its [LifeStage] plus the item worn in
// each cosmetic slot. A [Manager] turns that state into a [ComposedAsset]
// (the stage's base sprite with item layers drawn on top, muted when the
// creature is dead, sized for its stage) and memoizes it under a canonical
// key built by [BuildKey].
//
// # Quick start
//
//	atlas, _ := petsprite.LoadAtlas(atlasJSON, pages)
//	reg, envs, _ := petsprite.LoadManifest(manifestJSON, atlas, nil)
//	cfg, _ := petsprite.LoadConfig()
//	m := petsprite.NewManager(cfg, reg, envs)
//	m.Start(ctx)
//	defer m.Close()
//
//	pet, err := m.ResolveVisualAsset(int(petsprite.StageAdult), "hat_01", "", "cos_03")
//	if err != nil {
//		return // configuration error: skip the visual update
//	}
//	pet.DrawTo(screen, nil)
//
// # Caching
//
// Lookups refresh an entry's recency. Inserts never evict; a [Janitor] runs
// every [Config.CleanupInterval] and trims the cache back to
// [Config.MaxCacheSize] by dropping the least recently used entries. Between
// sweeps the cache may hold up to MaxCacheSize plus the number of keys added
// since the last sweep.
//
// # Missing content
//
// Unknown item ids contribute no layer, unknown atlas regions become magenta
// placeholders and unconfigured environments fall back to a default. Only a
// life stage outside the table is an error ([ErrStageOutOfRange]).
//
// Configuration is read from PETSPRITE_* environment variables; see [Config].
//
// [Ebitengine]: https://ebitengine.org
package petsprite
