/*
Package session serializes access to solved sessions.

A Manager wraps a ports.SessionStore with per-session locks so that only one
solve runs per session at a time. Locks are reference counted and dropped when
nobody holds them. With a ports.DistributedLocker the same guarantee holds
across server replicas sharing a Redis store.
*/
package session
