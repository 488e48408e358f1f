// Package locdisplay resolves display names for game locations and drives a
// single on-screen location notification.
//
// A host environment reports location changes as raw identifiers. The
// Resolver turns each identifier into a stable, translated display name,
// memoizing translation lookups per language, special-casing parametric
// locations such as mine levels and stripping GUID suffixes from
// procedurally generated instances. The Controller shows the resolved name
// in a single notification slot, suppressing duplicates and replacing stale
// notifications.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/locdisplay"
//	    "github.com/ZaguanLabs/locdisplay/cache"
//	    "github.com/ZaguanLabs/locdisplay/config"
//	)
//
//	func wire(host locdisplay.Host, hud locdisplay.Notifier) *locdisplay.Controller {
//	    resolver := locdisplay.NewResolver(cache.NewInMemoryCache(0),
//	        locdisplay.WithDisplayNamer(host),
//	    )
//	    return locdisplay.NewController(resolver, host, hud, config.Default())
//	}
//
//	// from the host's event callbacks:
//	//   controller.OnSessionStart()
//	//   controller.OnLocationChanged("UndergroundMine42")
package locdisplay
