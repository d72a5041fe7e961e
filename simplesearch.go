// Package simplesearch provides a small, best-effort site search over a
// catalog of pages and posts. A query is matched as a case-insensitive
// substring against each page's title and body, in catalog order, and at most
// a fixed number of matches is returned.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, badger/).
package simplesearch
