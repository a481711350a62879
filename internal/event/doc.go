// Package event provides a small synchronous publish/subscribe bus used to
// decouple the catalog loader, the grid and the application loop.
//
// Events are addressed by dot separated topics such as "grid.ready" or
// "nav.moved". Subscriptions use patterns in which "*" matches exactly one
// segment and "**" matches zero or more segments:
//
//	bus.Subscribe("nav.*", handler)     // nav.moved, nav.rejected
//	bus.Subscribe("catalog.**", handler) // catalog.loaded, catalog.failed
//	bus.Subscribe("**", handler)         // everything
//
// Handlers run on the publishing goroutine in subscription order. A handler
// that panics is recovered and reported as an error; it never stops delivery
// to the remaining handlers.
package event
