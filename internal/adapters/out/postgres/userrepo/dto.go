// Package userrepo provides read-side persistence for user accounts and
// their delivery addresses. Account management lives elsewhere; order
// placement only needs to resolve a customer and their own addresses.
package userrepo

import (
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Email     string       `gorm:"uniqueIndex"`
	FullName  string
	Addresses []AddressDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents a delivery address owned by a user.
type AddressDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Street   string
	City     string
	Postcode string
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// toDomain converts a database DTO to a user with their address collection.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addresses := make([]account.Address, 0, len(dto.Addresses))
	for _, addressDTO := range dto.Addresses {
		addressID, addrErr := kernel.UUIDFromBytes(addressDTO.ID[:])
		if addrErr != nil {
			return nil, addrErr
		}
		address, addrErr := account.RestoreAddress(
			addressID, addressDTO.Street, addressDTO.City, addressDTO.Postcode)
		if addrErr != nil {
			return nil, addrErr
		}
		addresses = append(addresses, address)
	}

	return account.RestoreUser(id, dto.Email, dto.FullName, addresses)
}
