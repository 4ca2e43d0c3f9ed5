package ecs

import (
	"github.com/phanxgames/petsprite"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Appearance is the component holding a creature's visual state and the
// sprite last resolved for it. State may be set directly or through
// SetVisualState; either way the next ResolveAppearances picks it up.
type Appearance struct {
	State petsprite.VisualState
	Asset *petsprite.ComposedAsset

	resolved     bool
	resolvedFrom petsprite.VisualState
}

// stale reports whether State has not been resolved yet.
func (a *Appearance) stale() bool {
	return !a.resolved || a.resolvedFrom != a.State
}

// AppearanceComponent is the Donburi component type for Appearance.
var AppearanceComponent = donburi.NewComponentType[Appearance]()

// ResolveFailed is published when an entity's state has no sprite, e.g. its
// life stage is outside the configured tables.
type ResolveFailed struct {
	Entity donburi.Entity
	State  petsprite.VisualState
	Err    error
}

// ResolveFailedEventType is the Donburi event type for ResolveFailed.
var ResolveFailedEventType = events.NewEventType[ResolveFailed]()

// Resolver is implemented by *petsprite.Manager.
type Resolver interface {
	Resolve(v petsprite.VisualState) (*petsprite.ComposedAsset, error)
}

var appearanceQuery = donburi.NewQuery(filter.Contains(AppearanceComponent))

// SetVisualState updates the entity's state. The sprite is re-resolved on
// the next ResolveAppearances only if the state actually changed.
func SetVisualState(entry *donburi.Entry, v petsprite.VisualState) {
	AppearanceComponent.Get(entry).State = v
}

// ResolveAppearances resolves every entity whose state changed since it was
// last resolved and returns how many were updated. Failures
// leave the previous sprite in place and publish a ResolveFailed event.
func ResolveAppearances(world donburi.World, r Resolver) int {
	updated := 0
	appearanceQuery.Each(world, func(entry *donburi.Entry) {
		a := AppearanceComponent.Get(entry)
		if !a.stale() {
			return
		}
		a.resolved = true
		a.resolvedFrom = a.State
		asset, err := r.Resolve(a.State)
		if err != nil {
			ResolveFailedEventType.Publish(world, ResolveFailed{
				Entity: entry.Entity(),
				State:  a.State,
				Err:    err,
			})
			return
		}
		a.Asset = asset
		updated++
	})
	return updated
}
