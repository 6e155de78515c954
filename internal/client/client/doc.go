// Package client contains the device-side building blocks that talk to the
// outside world.
//
// HTTPClient implements Client against the archive server: Fetch reads the
// remote document with GET /api/archive, Push replaces it with POST. Network
// failures and unexpected statuses are reported as ErrUnavailable; a push the
// server answered with an error status is ErrRejected. Both are matched with
// errors.Is.
//
// InitDatabase and RunMigrations open the local SQLite database and apply
// the embedded goose migrations.
package client
