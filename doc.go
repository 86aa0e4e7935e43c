// Package crewauth implements the authentication core of the harborline
// crewing platform: a minimal HS256 token codec, a salted scrypt credential
// verifier backed by a relational store, and the request guard every
// protected admin route calls before doing any work.
//
// The package issues and verifies bearer tokens for exactly one kind of
// principal, the platform administrator. Seafarer and shipowner facing
// surfaces authenticate elsewhere; the guard here answers a single
// question: is this caller an authenticated admin?
package crewauth
