package evloop

import "errors"

var (
	// ErrFacilityInit indicates the facility could not produce a usable
	// event base. There is no fallback facility, so for most processes
	// this is fatal.
	ErrFacilityInit = errors.New("unable to initialize event facility")
	// ErrNilCallback indicates a periodic timer was requested without a
	// callback.
	ErrNilCallback = errors.New("periodic timer requires a callback")
)
