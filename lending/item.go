package lending

import (
	"fmt"
	"time"
)

// NewItem validates the listing details and builds an item owned by owner.
// The item is not registered anywhere; use Registry.AddItem for that.
func NewItem(id, name, description, category string, owner *Member, costPerDay int, created time.Time) (*Item, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidItem)
	case description == "":
		return nil, fmt.Errorf("%w: description is required", ErrInvalidItem)
	case category == "":
		return nil, fmt.Errorf("%w: category is required", ErrInvalidItem)
	case owner == nil:
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidItem)
	case costPerDay < 0:
		return nil, fmt.Errorf("%w: cost per day cannot be negative", ErrInvalidItem)
	}

	return &Item{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		owner:       owner,
		costPerDay:  costPerDay,
		createdDate: created,
	}, nil
}

func (i *Item) ID() string             { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Description() string    { return i.description }
func (i *Item) Category() string       { return i.category }
func (i *Item) Owner() *Member         { return i.owner }
func (i *Item) CostPerDay() int        { return i.costPerDay }
func (i *Item) CreatedDate() time.Time { return i.createdDate }

// Contracts returns a copy of the contracts bound to the item.
func (i *Item) Contracts() []*Contract {
	return append([]*Contract(nil), i.contracts...)
}

// BindContract appends c to the item's contracts. Overlap is checked by the caller.
func (i *Item) BindContract(c *Contract) error {
	if c == nil {
		return fmt.Errorf("%w: contract cannot be nil", ErrInvalidContract)
	}
	i.contracts = append(i.contracts, c)
	return nil
}

// IsAvailable reports whether no bound contract shares a day with [start, end].
// Both ends are inclusive, so a contract ending on day D blocks one starting on D.
func (i *Item) IsAvailable(start, end time.Time) bool {
	for _, c := range i.contracts {
		if c.overlaps(start, end) {
			return false
		}
	}
	return true
}
