package entity

import "github.com/google/uuid"

// Prefixes for client-minted identifiers.
const (
	PrefixUnion          = "union"
	PrefixAssociation    = "asoc"
	PrefixZone           = "zona"
	PrefixDistrict       = "dist"
	PrefixChurch         = "igl"
	PrefixSmallGroup     = "gp"
	PrefixMember         = "miem"
	PrefixMissionaryPair = "par"
	PrefixWeeklyReport   = "inf"
)

// NewID mints a non-authoritative identifier of the form <prefix>-<uuid v7>.
// User identifiers are never minted here; the user repository assigns them.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return prefix + "-" + id.String()
}
