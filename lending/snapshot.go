package lending

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is a detached, read-only copy of the registry state.
type Snapshot struct {
	Day       int            `json:"day"`
	Members   []MemberView   `json:"members"`
	Items     []ItemView     `json:"items"`
	Contracts []ContractView `json:"contracts"`
}

type MemberView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Credits     int      `json:"credits"`
	CreatedDate string   `json:"created_date"`
	OwnedItems  []string `json:"owned_items"`
}

type ItemView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	OwnerID     string   `json:"owner_id"`
	CostPerDay  int      `json:"cost_per_day"`
	CreatedDate string   `json:"created_date"`
	Contracts   []string `json:"contracts"`
}

type ContractView struct {
	ID                 string `json:"id"`
	BorrowerID         string `json:"borrower_id"`
	ItemID             string `json:"item_id"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	CreditsTransferred int    `json:"credits_transferred"`
}

// Snapshot copies the current state; later registry changes do not affect it.
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Day:       r.days.Current(),
		Members:   make([]MemberView, 0, len(r.members)),
		Items:     make([]ItemView, 0, len(r.items)),
		Contracts: make([]ContractView, 0, len(r.contracts)),
	}

	for _, m := range r.members {
		owned := make([]string, 0, len(m.ownedItems))
		for _, i := range m.ownedItems {
			owned = append(owned, i.id)
		}
		s.Members = append(s.Members, MemberView{
			ID:          m.id,
			Name:        m.name,
			Email:       m.email,
			Phone:       m.phone,
			Credits:     m.credits,
			CreatedDate: m.createdDate.Format(DateLayout),
			OwnedItems:  owned,
		})
	}

	for _, i := range r.items {
		bound := make([]string, 0, len(i.contracts))
		for _, c := range i.contracts {
			bound = append(bound, c.id)
		}
		s.Items = append(s.Items, ItemView{
			ID:          i.id,
			Name:        i.name,
			Description: i.description,
			Category:    i.category,
			OwnerID:     i.owner.id,
			CostPerDay:  i.costPerDay,
			CreatedDate: i.createdDate.Format(DateLayout),
			Contracts:   bound,
		})
	}

	for _, c := range r.contracts {
		s.Contracts = append(s.Contracts, ContractView{
			ID:                 c.id,
			BorrowerID:         c.borrower.id,
			ItemID:             c.item.id,
			StartDate:          c.start.Format(DateLayout),
			EndDate:            c.end.Format(DateLayout),
			CreditsTransferred: c.creditsTransferred,
		})
	}

	return s
}

// MarshalSnapshot encodes s as indented JSON.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
