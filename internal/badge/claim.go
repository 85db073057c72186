package badge

import "errors"

var (
	// ErrBadgeNotFound indicates the badge id does not exist in the catalog.
	ErrBadgeNotFound = errors.New("badge not found")
	// ErrNotClaimable indicates a claim was attempted on an automatic-category badge.
	ErrNotClaimable = errors.New("badge is not claimable")
	// ErrAlreadyEarned indicates the family has already earned or claimed the badge.
	ErrAlreadyEarned = errors.New("badge already earned")
)

// Claim resolves a manual badge claim against the catalog and the family's
// earned set. On success it returns the definition to record as earned with
// the manual flag set; persistence must re-check the earned set at write
// time so a racing duplicate claim still produces a single record.
func (c *Catalog) Claim(badgeID string, earned map[string]bool) (Definition, error) {
	def, ok := c.ByID(badgeID)
	if !ok {
		return Definition{}, ErrBadgeNotFound
	}
	if !def.Category.Manual() {
		return Definition{}, ErrNotClaimable
	}
	if earned[badgeID] {
		return Definition{}, ErrAlreadyEarned
	}
	return def, nil
}
