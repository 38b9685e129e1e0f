package application

import "expvar"

// Counters published on /api/debug/vars.
var (
	registrations      = expvar.NewInt("registrations")
	logins             = expvar.NewInt("logins")
	directoryFallbacks = expvar.NewInt("directory_fallbacks")
)
