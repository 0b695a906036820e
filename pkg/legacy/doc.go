// Package legacy supports moving content off the standalone random
// description block onto the site-tagline variation.
//
// Migrate converts the attributes of a legacy block into variation
// attributes. Scanner finds posts in a SQLite content store that still
// contain legacy blocks; results are cached for an hour because the scan
// runs on every admin page view. ScheduleRefresh keeps that cache warm on a
// cron schedule.
package legacy
