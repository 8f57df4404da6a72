// Package sweeper reclaims storage held by expired artifacts.
//
// A Sweeper runs on a fixed interval and asks the store to purge every entry
// whose retention window has passed. Purging is a space-reclamation concern
// only: stores enforce expiry lazily on fetch, so artifact availability never
// depends on sweeper timing.
//
//	sw := sweeper.New(store, sweeper.Config{Interval: time.Hour})
//	go sw.Run(ctx)
//
// SweepNow triggers a single immediate pass, which callers expose for
// operational tooling.
package sweeper
