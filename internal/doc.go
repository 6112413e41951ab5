// Package isstracker implements a command-line ISS pass tracker.
//
// # Architecture
//
// The tool is structured into several key packages:
//   - config: YAML and environment configuration
//   - geocode: Nominatim client for free-text location lookup
//   - timezone: offline coordinate-to-timezone resolution
//   - n2yo: N2YO satellite API client (position and visual passes)
//   - passes: pass formatting and cardinal direction conversion
//   - tracker: sequential orchestration and console output
//   - models: shared data structures
//
// Key Behaviors
//
//   - Fallback Location:
//     Empty input, a failed geocode lookup, or a no-match result all
//     resolve to the configured default location (Los Angeles).
//
//   - Degraded Output:
//     Satellite API failures produce "unavailable" messaging rather
//     than aborting; an unloadable timezone degrades a pass to
//     UTC-only start/end times.
//
//   - Credential Gate:
//     Without N2YO_API_KEY the program prints an error and performs
//     no work at all.
//
// Example Usage
//
//	N2YO_API_KEY=... iss-tracker -config config.yaml
//
// For more information about specific packages, see their respective
// documentation.
package isstracker
