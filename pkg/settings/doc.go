// Package settings holds display preferences and the application config.
//
// Settings are the user-facing toggles (24-hour clock, date display,
// sound, haptics). Config is the YAML file that also carries the storage
// backend, tick interval, event log location and optional NTP server.
package settings
