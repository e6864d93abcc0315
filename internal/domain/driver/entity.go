package driver

import (
	"parkpass/internal/domain/pricing"

	"github.com/google/uuid"
)

// Driver is reference data owned by the identity provider.
type Driver struct {
	id             uuid.UUID
	name           string
	membershipType pricing.MembershipType
}

func Reconstruct(id uuid.UUID, name string, membershipType pricing.MembershipType) *Driver {
	return &Driver{id: id, name: name, membershipType: membershipType}
}

func (d *Driver) ID() uuid.UUID                          { return d.id }
func (d *Driver) Name() string                           { return d.name }
func (d *Driver) MembershipType() pricing.MembershipType { return d.membershipType }

func (d *Driver) HasMembership() bool {
	return d.membershipType != ""
}
