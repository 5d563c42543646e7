package lending

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Seed describes members, items and contracts to load into a fresh registry.
type Seed struct {
	Members   []SeedMember   `yaml:"members"`
	Items     []SeedItem     `yaml:"items"`
	Contracts []SeedContract `yaml:"contracts"`
}

type SeedMember struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type SeedItem struct {
	Owner       string `yaml:"owner"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	CostPerDay  int    `yaml:"cost_per_day"`
}

// SeedContract runs from Start (today when empty) to End, or to Start plus Days when
// End is empty.
type SeedContract struct {
	Borrower string `yaml:"borrower"`
	Item     string `yaml:"item"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Days     int    `yaml:"days"`
}

// LoadSeed reads a YAML seed document from path.
func LoadSeed(path string) (*Seed, error) {
	buf, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(buf)
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(buf []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &s, nil
}

// DefaultSeed is the sample data every interactive session starts with unless seeding
// is turned off: three members, two items each and one five-day contract from today.
func DefaultSeed() *Seed {
	return &Seed{
		Members: []SeedMember{
			{Name: "John Doe", Email: "john@example.com", Phone: "123456789"},
			{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "987654321"},
			{Name: "Alice Brown", Email: "alice.brown@example.com", Phone: "555666777"},
		},
		Items: []SeedItem{
			{Owner: "John Doe", Name: "Laptop", Description: "Gaming Laptop", Category: "Electronic", CostPerDay: 50},
			{Owner: "John Doe", Name: "Camera", Description: "DSLR Camera", Category: "Photography", CostPerDay: 30},
			{Owner: "Jane Smith", Name: "Bicycle", Description: "Mountain Bike", Category: "Sports", CostPerDay: 20},
			{Owner: "Jane Smith", Name: "Tent", Description: "Camping Tent", Category: "Outdoor", CostPerDay: 25},
			{Owner: "Alice Brown", Name: "Guitar", Description: "Electric Guitar", Category: "Musical Instrument", CostPerDay: 40},
			{Owner: "Alice Brown", Name: "Projector", Description: "HD Projector", Category: "Electronic", CostPerDay: 35},
		},
		Contracts: []SeedContract{
			{Borrower: "Jane Smith", Item: "Laptop", Days: 5},
		},
	}
}

// SeedEntry is the outcome of loading one seed entry.
type SeedEntry struct {
	Kind string // "member", "item" or "contract"
	Name string
	Err  error
}

// SeedReport lists every entry in load order.
type SeedReport struct {
	Entries []SeedEntry
}

// Failed counts the entries that could not be loaded.
func (r SeedReport) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// ApplySeed loads members, then items, then contracts. A failing entry is recorded in
// the report and loading continues with the next one.
func (r *Registry) ApplySeed(s *Seed) SeedReport {
	var report SeedReport
	if s == nil {
		return report
	}

	for _, m := range s.Members {
		_, err := r.AddMember(m.Name, m.Email, m.Phone)
		report.Entries = append(report.Entries, SeedEntry{Kind: "member", Name: m.Name, Err: err})
	}

	for _, it := range s.Items {
		_, err := r.AddItem(it.Owner, it.Name, it.Description, it.Category, it.CostPerDay)
		report.Entries = append(report.Entries, SeedEntry{Kind: "item", Name: it.Name, Err: err})
	}

	for _, c := range s.Contracts {
		name := c.Borrower + " / " + c.Item
		start, end, err := c.period(r.clock.Today())
		if err == nil {
			err = r.CreateContract(c.Borrower, c.Item, start, end).Err
		}
		report.Entries = append(report.Entries, SeedEntry{Kind: "contract", Name: name, Err: err})
	}

	if failed := report.Failed(); failed > 0 {
		r.logger.Warn("seed loaded with failures", "entries", len(report.Entries), "failed", failed)
	} else {
		r.logger.Info("seed loaded", "entries", len(report.Entries))
	}
	return report
}

func (c SeedContract) period(today time.Time) (time.Time, time.Time, error) {
	start := today
	if c.Start != "" {
		var err error
		if start, err = ParseDate(c.Start); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if c.End == "" {
		return start, start.AddDate(0, 0, c.Days), nil
	}
	end, err := ParseDate(c.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
