// Package driver contains the Driver aggregate.
//
// A driver is claimed for exactly one active order at a time: MarkBusy flips
// availability off and conflicts when the driver is already claimed, Release
// idempotently returns the driver to the pool. Credentials are stored as
// bcrypt hashes and verified on login.
package driver
