// Package syncer keeps the in-memory archive, the on-device copy and the
// server copy in step.
//
// A Controller serves reads from the local copy immediately and reconciles
// with the server in the background: whichever copy carries the later
// updatedAt wins, and a tie goes to the server. Every Update is written
// locally first and then pushed to the server without waiting. Pushes are
// fire-and-forget: failures are logged and dropped, and two pushes in flight
// may reach the server in either order.
package syncer
