/*
# Module: storage/repository.go
Repository interface for per-session location persistence.

## Linked Modules
- [types/location](../types/location.go) - Location data structures

## Tags
storage, repository, interface, session

## Exports
SessionRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/repository.go" ;
    code:description "Repository interface for per-session location persistence" ;
    code:linksTo [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Location data structures"
    ] ;
    code:exports :SessionRepository ;
    code:tags "storage", "repository", "interface", "session" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"

	"recreo/types"
)

// SessionRepository handles the location record stored per client session.
// GetLocation returns (nil, nil) when the session has no record; saves
// overwrite the whole record. Consistency is whatever the backend gives
// (last write wins).
type SessionRepository interface {
	GetLocation(ctx context.Context, sessionID string) (*types.LocationRecord, error)
	SaveLocation(ctx context.Context, sessionID string, record types.LocationRecord) error
}
