/*
Package event provides an in-process event bus and the navigation signal that
resets token stores.

# Overview

Events carry an ID, a type, a source, a timestamp and a typed payload. A
LocalBus fans each published event out to the handlers subscribed to its
type, synchronously and in subscription order, so a store reset triggered by
a navigation event has completed when Publish returns.

# Navigation

Navigator publishes "navigation.started" events and implements
tokens.NavigationSource, which is how a store learns it must reset:

	bus := event.NewBus(event.DefaultBusConfig)
	nav := event.NewNavigator(bus)
	store := tokens.NewStore(tokens.WithNavigation(nav))

	_ = nav.Start(ctx, "/home", "/about") // store is back at its defaults
*/
package event
