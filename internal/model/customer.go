package model

import "time"

// Customer is customer model entity
type Customer struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Address   string    `json:"address" bson:"address"`
	Home      string    `json:"home" bson:"home"`
	Road      string    `json:"road" bson:"road"`
	Block     string    `json:"block" bson:"block"`
	Town      string    `json:"town" bson:"town"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MergePatch returns copy of customer with all present patch fields applied
func (c Customer) MergePatch(patch *PatchCustomer) Customer {
	if patch == nil {
		return c
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}

	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}

	if patch.Address != nil {
		c.Address = *patch.Address
	}

	if patch.Home != nil {
		c.Home = *patch.Home
	}

	if patch.Road != nil {
		c.Road = *patch.Road
	}

	if patch.Block != nil {
		c.Block = *patch.Block
	}

	if patch.Town != nil {
		c.Town = *patch.Town
	}
	return c
}

// NewCustomer holds client-settable data of customer which is about to be created
type NewCustomer struct {
	Name    string
	Phone   string
	Address string
	Home    string
	Road    string
	Block   string
	Town    string
}

// PatchCustomer holds partial customer update, nil fields are left untouched
type PatchCustomer struct {
	Name    *string
	Phone   *string
	Address *string
	Home    *string
	Road    *string
	Block   *string
	Town    *string
}
