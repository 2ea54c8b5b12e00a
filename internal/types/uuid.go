package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier. ULIDs carry a
// millisecond timestamp prefix plus a random suffix, so ids mint in
// insertion order and never collide within a process lifetime.
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier with an
// entity prefix, e.g. cust_01JQX9V2N8T3M6W0FJ5K8R2D4Z.
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all entities served by the dashboard
	UUID_PREFIX_CUSTOMER = "cust"
	UUID_PREFIX_PRODUCT  = "prod"
	UUID_PREFIX_ARTICLE  = "art"
)
