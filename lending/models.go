package lending

import "time"

const (
	// InitialCredits is the balance every new member starts with.
	InitialCredits = 100
	// ListingBonus is credited to a member each time they list an item.
	ListingBonus = 100
)

// Member is a registered participant who can own and borrow items.
// The balance only changes through Credit, Debit and listing an item.
type Member struct {
	id          string
	name        string
	email       string
	phone       string
	credits     int
	createdDate time.Time
	ownedItems  []*Item
	borrowed    []*Contract
}

// Item is a physical thing a member lends out at a fixed cost per day.
// Its bound contracts never overlap one another.
type Item struct {
	id          string
	name        string
	description string
	category    string
	owner       *Member
	costPerDay  int
	createdDate time.Time
	contracts   []*Contract
}

// Contract reserves an item for a borrower from Start to End. It is immutable.
type Contract struct {
	id                 string
	borrower           *Member
	item               *Item
	start              time.Time
	end                time.Time
	creditsTransferred int
}

func (c *Contract) ID() string              { return c.id }
func (c *Contract) Borrower() *Member       { return c.borrower }
func (c *Contract) Item() *Item             { return c.item }
func (c *Contract) StartDate() time.Time    { return c.start }
func (c *Contract) EndDate() time.Time      { return c.end }
func (c *Contract) CreditsTransferred() int { return c.creditsTransferred }
func (c *Contract) Duration() int           { return DaysBetween(c.start, c.end) }

func (c *Contract) overlaps(s, e time.Time) bool { return rangesOverlap(s, e, c.start, c.end) }
