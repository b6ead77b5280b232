// Package facility defines the interface this library consumes from the
// underlying event-notification facility, together with two in-tree
// implementations and the startup feature probe that selects between
// them.
//
// The facility owns readiness/timer multiplexing and the run loop. The
// rest of the library only ever talks to it through the [Facility],
// [Base], and [Event] interfaces, so incompatible facility builds can
// coexist behind one API and both code paths stay testable in a single
// binary:
//
//   - [Modern] supports persistent (repeat-forever) timers and a log
//     interception hook, and exposes a numeric version.
//   - [Legacy] supports only one-shot timers, has no log hook, and
//     reports its version only as a string. Callers emulate periodic
//     firing on top of it.
//
// Pick one at startup:
//
//	f := facility.Probe()
//	base, err := f.NewBase(&facility.BaseConfig{NoLock: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer base.Free()
//
//	ev, _ := base.AddTimer(time.Second, f.SupportsPersistentTimers(), tick)
//	base.LoopExit(10 * time.Second)
//	base.Dispatch()
//	ev.Delete()
//
// Everything here is single-threaded: a Base and its events must only
// be touched from the goroutine that drives Dispatch. BaseConfig.NoLock
// promises exactly that, letting the facility skip its internal
// synchronization setup.
package facility
