// Package timezone keeps the application clock in one configured zone.
//
// Transactions are grouped per calendar day, so the day boundary used by
// Today must match the zone the shop operates in:
//
//	day := timezone.Today()             // "2024-03-01" in APP_TIMEZONE
//	now := timezone.Now()               // wall clock in APP_TIMEZONE
//	formatted := timezone.Format(t, time.RFC3339)
//
// The zone is read from APP_TIMEZONE when the package is imported and
// can be replaced with SetLocation. Use IANA names such as "UTC" or
// "Africa/Lagos"; anything else falls back to UTC.
package timezone
