/*
# Module: storage/memory.go
In-memory session repository with expiry sweeping.

## Linked Modules
- [storage/repository](./repository.go) - Repository interface
- [types/location](../types/location.go) - Location data structures

## Tags
storage, memory, session

## Exports
MemorySessionRepository, NewMemorySessionRepository, CleanupLoop

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/memory.go" ;
    code:description "In-memory session repository with expiry sweeping" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Repository interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Location data structures"
    ] ;
    code:exports :MemorySessionRepository, :NewMemorySessionRepository, :CleanupLoop ;
    code:tags "storage", "memory", "session" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"log"
	"sync"
	"time"

	"recreo/types"
)

type memoryEntry struct {
	record    types.LocationRecord
	updatedAt time.Time
}

// MemorySessionRepository keeps session records in process memory. Entries
// untouched for 24 hours are removed by CleanupLoop.
type MemorySessionRepository struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
	ttl     time.Duration
}

// NewMemorySessionRepository creates an empty in-memory repository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		records: make(map[string]memoryEntry),
		ttl:     24 * time.Hour,
	}
}

// GetLocation returns the session's record, or nil if none is stored
func (r *MemorySessionRepository) GetLocation(ctx context.Context, sessionID string) (*types.LocationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.records[sessionID]
	if !ok {
		return nil, nil
	}
	record := entry.record
	return &record, nil
}

// SaveLocation overwrites the session's record
func (r *MemorySessionRepository) SaveLocation(ctx context.Context, sessionID string, record types.LocationRecord) error {
	r.mu.Lock()
	r.records[sessionID] = memoryEntry{record: record, updatedAt: time.Now()}
	r.mu.Unlock()
	return nil
}

// CleanupLoop removes expired sessions once an hour. Run it in a goroutine;
// it never returns.
func (r *MemorySessionRepository) CleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		r.removeExpired(time.Now())
	}
}

func (r *MemorySessionRepository) removeExpired(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, entry := range r.records {
		if now.Sub(entry.updatedAt) > r.ttl {
			delete(r.records, id)
			log.Printf("🗑️  Expired session location: %s", id)
		}
	}
}
