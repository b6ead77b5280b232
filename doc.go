// Package evloop wraps the underlying event-notification facility so a
// long-running process can depend on one logical event loop while
// staying portable across incompatible facility builds.
//
// The package papers over three problems at once: facility builds that
// use different version-string schemes (decoded by evloop/version),
// per-backend and per-platform bugs that can only be detected at run
// time (classified by evloop/compat), and facility builds that lack a
// native recurring timer, which this package emulates on top of
// one-shot timers.
//
// Example:
//
//	loop, err := evloop.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loop.Close()
//
//	loop.AttachLogBridge()
//	loop.CheckHeaderRuntimeSkew()
//	loop.CheckVersionCompatibility(true)
//
//	timer, err := loop.NewPeriodicTimer(time.Second, func(t *evloop.PeriodicTimer, data interface{}) {
//	    fmt.Println("tick")
//	}, nil)
//	if err != nil {
//	    log.Printf("timer registration failed: %v", err)
//	}
//	defer evloop.DestroyPeriodicTimer(timer)
//
//	loop.Run()
//
// Processes that want the facility's traditional one-context-per-process
// shape can use the package-level singleton instead: Initialize once at
// startup, then Current, BackendName, and the other package functions.
//
// Nothing in this package is safe for concurrent use. A Loop and
// everything created from it belong to the single goroutine that drives
// Run; establish the loop, the log bridge, and the suppression filter
// during single-threaded startup.
package evloop
