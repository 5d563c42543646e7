package lending

import (
	"fmt"
	"math"
	"time"
)

func newMember(id, name, email, phone string, created time.Time) *Member {
	return &Member{
		id:          id,
		name:        name,
		email:       email,
		phone:       phone,
		credits:     InitialCredits,
		createdDate: created,
	}
}

func (m *Member) ID() string             { return m.id }
func (m *Member) Name() string           { return m.name }
func (m *Member) Email() string          { return m.email }
func (m *Member) Phone() string          { return m.phone }
func (m *Member) Credits() int           { return m.credits }
func (m *Member) CreatedDate() time.Time { return m.createdDate }

// OwnedItems returns a copy of the member's listed items in listing order.
func (m *Member) OwnedItems() []*Item {
	return append([]*Item(nil), m.ownedItems...)
}

// Contracts returns a copy of the contracts in which the member is the borrower.
func (m *Member) Contracts() []*Contract {
	return append([]*Contract(nil), m.borrowed...)
}

// Credit adds amount to the balance.
func (m *Member) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	if m.credits > math.MaxInt-amount {
		return fmt.Errorf("%w: %d + %d", ErrCreditOverflow, m.credits, amount)
	}
	m.credits += amount
	return nil
}

// Debit removes amount from the balance, or nothing at all when the balance is too low.
func (m *Member) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	if amount > m.credits {
		return fmt.Errorf("%w: not enough credits to deduct %d", ErrInsufficientCredits, amount)
	}
	m.credits -= amount
	return nil
}

// registerOwnership lists item under the member and pays the listing bonus.
func (m *Member) registerOwnership(item *Item) {
	m.ownedItems = append(m.ownedItems, item)
	m.credits += ListingBonus
}

func (m *Member) updateInfo(name, email, phone string) {
	m.name = name
	m.email = email
	m.phone = phone
}
