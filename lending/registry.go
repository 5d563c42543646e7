package lending

import (
	"fmt"
	"time"
)

// Registry owns every member, item and contract of a session and is the only entry
// point for the front end. It does no locking: a concurrent host must serialize calls.
type Registry struct {
	members   []*Member
	items     []*Item
	contracts []*Contract

	// Name indexes keep the earliest entity per name, so a later duplicate is never
	// reachable by name. ID indexes are exact.
	memberByName map[string]*Member
	itemByName   map[string]*Item
	memberByID   map[string]*Member
	itemByID     map[string]*Item

	days    DayCounter
	factory contractFactory
	ids     IDGenerator
	clock   Clock
	logger  Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		memberByName: make(map[string]*Member),
		itemByName:   make(map[string]*Item),
		memberByID:   make(map[string]*Member),
		itemByID:     make(map[string]*Item),
		ids:          newULIDGen(),
		clock:        systemClock{},
		logger:       nopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.factory = contractFactory{ids: r.ids}
	return r
}

// ------------------ Members ------------------

// AddMember registers a member with the initial balance. It only fails if no ID can be
// generated.
func (r *Registry) AddMember(name, email, phone string) (*Member, error) {
	id, err := r.ids.New()
	if err != nil {
		return nil, fmt.Errorf("generate member id: %w", err)
	}

	m := newMember(id, name, email, phone, r.clock.Today())
	r.members = append(r.members, m)
	r.memberByID[id] = m
	if _, taken := r.memberByName[name]; !taken {
		r.memberByName[name] = m
	}

	r.logger.Info("member added", "member_id", id, "name", name, "credits", m.credits)
	return m, nil
}

// FindMember returns the first member registered under name, or nil.
func (r *Registry) FindMember(name string) *Member { return r.memberByName[name] }

// MemberByID returns the member with the given ID, or nil.
func (r *Registry) MemberByID(id string) *Member { return r.memberByID[id] }

// UpdateMember changes a member's contact details. Renaming re-evaluates name lookups
// in registration order, so the earliest member with a name still wins.
func (r *Registry) UpdateMember(id, name, email, phone string) error {
	m := r.memberByID[id]
	if m == nil {
		return fmt.Errorf("%w: id %s", ErrMemberNotFound, id)
	}
	oldName := m.name
	m.updateInfo(name, email, phone)
	if oldName != name {
		r.reindexMemberNames()
	}
	r.logger.Info("member updated", "member_id", id, "name", name)
	return nil
}

func (r *Registry) reindexMemberNames() {
	r.memberByName = make(map[string]*Member, len(r.members))
	for _, m := range r.members {
		if _, taken := r.memberByName[m.name]; !taken {
			r.memberByName[m.name] = m
		}
	}
}

// Members returns a copy of all members in registration order.
func (r *Registry) Members() []*Member { return append([]*Member(nil), r.members...) }

// ------------------ Items ------------------

// AddItem lists a new item under the first member named ownerName and pays the listing
// bonus. Nothing changes when the owner is unknown or the item is invalid.
func (r *Registry) AddItem(ownerName, name, description, category string, costPerDay int) (*Item, error) {
	owner := r.FindMember(ownerName)
	if owner == nil {
		r.logger.Debug("item rejected", "owner", ownerName, "item", name, "reason", ErrMemberNotFound)
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, ownerName)
	}

	id, err := r.ids.New()
	if err != nil {
		return nil, fmt.Errorf("generate item id: %w", err)
	}

	item, err := NewItem(id, name, description, category, owner, costPerDay, r.clock.Today())
	if err != nil {
		r.logger.Debug("item rejected", "owner", ownerName, "item", name, "reason", err)
		return nil, err
	}

	owner.registerOwnership(item)
	r.items = append(r.items, item)
	r.itemByID[id] = item
	if _, taken := r.itemByName[name]; !taken {
		r.itemByName[name] = item
	}

	r.logger.Info("item added", "item_id", id, "item", name, "owner", ownerName, "cost_per_day", costPerDay)
	return item, nil
}

// FindItem returns the first item listed under name, or nil.
func (r *Registry) FindItem(name string) *Item { return r.itemByName[name] }

// ItemByID returns the item with the given ID, or nil.
func (r *Registry) ItemByID(id string) *Item { return r.itemByID[id] }

// Items returns a copy of all items in listing order.
func (r *Registry) Items() []*Item { return append([]*Item(nil), r.items...) }

// ------------------ Contracts ------------------

// CreateContract resolves borrower and item by name and tries to settle a contract for
// [start, end]. On any outcome other than Created nothing has changed.
func (r *Registry) CreateContract(borrowerName, itemName string, start, end time.Time) ContractResult {
	return r.createContract(r.FindMember(borrowerName), r.FindItem(itemName), start, end)
}

// CreateContractByID is CreateContract with exact ID lookups, unaffected by duplicate names.
func (r *Registry) CreateContractByID(borrowerID, itemID string, start, end time.Time) ContractResult {
	return r.createContract(r.MemberByID(borrowerID), r.ItemByID(itemID), start, end)
}

func (r *Registry) createContract(borrower *Member, item *Item, start, end time.Time) ContractResult {
	c, err := r.factory.create(borrower, item, start, end)
	if err != nil {
		r.logger.Debug("contract rejected",
			"borrower", nameOf(borrower), "item", itemNameOf(item),
			"start", start.Format(DateLayout), "end", end.Format(DateLayout), "reason", err)
		return contractResult(nil, err)
	}

	r.contracts = append(r.contracts, c)
	r.logger.Info("contract created",
		"contract_id", c.id, "borrower", borrower.name, "item", item.name,
		"start", c.start.Format(DateLayout), "end", c.end.Format(DateLayout), "credits", c.creditsTransferred)
	return contractResult(c, nil)
}

// Contracts returns a copy of all contracts in creation order.
func (r *Registry) Contracts() []*Contract { return append([]*Contract(nil), r.contracts...) }

// ------------------ Time ------------------

// AdvanceDay moves the day counter forward and returns the new day.
func (r *Registry) AdvanceDay() int {
	day := r.days.Advance()
	r.logger.Info("day advanced", "day", day)
	return day
}

func (r *Registry) CurrentDay() int { return r.days.Current() }

// Today is the registry clock's date, used for creation dates and the sample data.
func (r *Registry) Today() time.Time { return r.clock.Today() }

func nameOf(m *Member) string {
	if m == nil {
		return ""
	}
	return m.name
}

func itemNameOf(i *Item) string {
	if i == nil {
		return ""
	}
	return i.name
}
