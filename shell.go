package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"stuff-lending/lending"
)

// shell is the menu-driven front end. It parses console input into typed requests for
// the registry and renders the results.
type shell struct {
	sc          *bufio.Scanner
	out         io.Writer
	reg         *lending.Registry
	interactive bool
}

func newShell(in io.Reader, out io.Writer, reg *lending.Registry, interactive bool) *shell {
	return &shell{sc: bufio.NewScanner(in), out: out, reg: reg, interactive: interactive}
}

func (s *shell) run() error {
	s.printMenu()

	for {
		if s.interactive {
			fmt.Fprint(s.out, "\nChoose an option: ")
		}
		if !s.sc.Scan() {
			return s.sc.Err()
		}

		switch strings.ToLower(strings.TrimSpace(s.sc.Text())) {
		case "1", "add member":
			s.handleAddMember()
		case "2", "add item":
			s.handleAddItem()
		case "3", "create contract", "contract":
			s.handleCreateContract()
		case "4", "view member":
			s.handleViewMember()
		case "5", "list members":
			s.handleListMembers()
		case "6", "list items":
			s.handleListItems()
		case "7", "list contracts":
			s.handleListContracts()
		case "8", "advance time":
			s.handleAdvanceTime()
		case "9", "exit":
			fmt.Fprintln(s.out, "Exiting the system...")
			return nil
		case "update member":
			s.handleUpdateMember()
		case "export":
			s.handleExport()
		case "menu", "help":
			s.printMenu()
		case "":
			continue
		default:
			fmt.Fprintln(s.out, "Invalid option! Please try again.")
		}
	}
}

func (s *shell) printMenu() {
	if !s.interactive {
		return
	}
	fmt.Fprintln(s.out, "====================================")
	fmt.Fprintln(s.out, "        Stuff Lending System        ")
	fmt.Fprintln(s.out, "====================================")
	fmt.Fprintln(s.out, "1. Add Member")
	fmt.Fprintln(s.out, "2. Add Item")
	fmt.Fprintln(s.out, "3. Create Lending Contract")
	fmt.Fprintln(s.out, "4. View Member Info")
	fmt.Fprintln(s.out, "5. View All Members")
	fmt.Fprintln(s.out, "6. View All Items")
	fmt.Fprintln(s.out, "7. View All Contracts")
	fmt.Fprintln(s.out, "8. Advance Time")
	fmt.Fprintln(s.out, "9. Exit")
	fmt.Fprintln(s.out, "Also: 'update member' edits contact details, 'export' prints the current state as JSON,")
	fmt.Fprintln(s.out, "'menu' shows this list.")
}

// ask prints label when a person is typing and returns the next trimmed line.
// ok is false once input is exhausted.
func (s *shell) ask(label string) (line string, ok bool) {
	if s.interactive {
		fmt.Fprint(s.out, label)
	}
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) askDate(label string) (time.Time, bool) {
	raw, ok := s.ask(label)
	if !ok {
		return time.Time{}, false
	}
	d, err := lending.ParseDate(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid date format. Please use 'yyyy-mm-dd'.")
		return time.Time{}, false
	}
	return d, true
}

func (s *shell) handleAddMember() {
	name, ok := s.ask("Member name: ")
	if !ok {
		return
	}
	email, ok := s.ask("Member email: ")
	if !ok {
		return
	}
	phone, ok := s.ask("Member phone number: ")
	if !ok {
		return
	}

	m, err := s.reg.AddMember(name, email, phone)
	if err != nil {
		fmt.Fprintf(s.out, "Error adding member: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Member added successfully! (ID: %s)\n", lending.ShortID(m.ID()))
}

func (s *shell) handleAddItem() {
	owner, ok := s.ask("Member name for the item: ")
	if !ok {
		return
	}
	name, ok := s.ask("Item name: ")
	if !ok {
		return
	}
	description, ok := s.ask("Item description: ")
	if !ok {
		return
	}
	category, ok := s.ask("Item category: ")
	if !ok {
		return
	}
	costStr, ok := s.ask("Cost per day: ")
	if !ok {
		return
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid cost per day. Please enter a valid number.")
		return
	}

	_, err = s.reg.AddItem(owner, name, description, category, cost)
	outcome := lending.ItemOutcomeOf(err)
	if outcome == lending.Invalid {
		fmt.Fprintf(s.out, "Error adding item: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, outcome.Message(owner))
}

func (s *shell) handleCreateContract() {
	borrower, ok := s.ask("Borrower name: ")
	if !ok {
		return
	}
	item, ok := s.ask("Item name: ")
	if !ok {
		return
	}
	start, ok := s.askDate("Contract start date (yyyy-mm-dd): ")
	if !ok {
		return
	}
	end, ok := s.askDate("Contract end date (yyyy-mm-dd): ")
	if !ok {
		return
	}

	res := s.reg.CreateContract(borrower, item, start, end)
	fmt.Fprintln(s.out, res.Outcome)
	if res.Contract != nil {
		fmt.Fprintf(s.out, "%d credits transferred from %s to %s.\n",
			res.Contract.CreditsTransferred(), borrower, res.Contract.Item().Owner().Name())
	}
}

// handleUpdateMember edits the member found by name. Blank answers keep the current value.
func (s *shell) handleUpdateMember() {
	current, ok := s.ask("Member name to update: ")
	if !ok {
		return
	}
	m := s.reg.FindMember(current)
	if m == nil {
		fmt.Fprintln(s.out, "Member not found!")
		return
	}
	name, ok := s.ask(fmt.Sprintf("New name [%s]: ", m.Name()))
	if !ok {
		return
	}
	email, ok := s.ask(fmt.Sprintf("New email [%s]: ", m.Email()))
	if !ok {
		return
	}
	phone, ok := s.ask(fmt.Sprintf("New phone number [%s]: ", m.Phone()))
	if !ok {
		return
	}

	if err := s.reg.UpdateMember(m.ID(), orDefault(name, m.Name()), orDefault(email, m.Email()), orDefault(phone, m.Phone())); err != nil {
		fmt.Fprintf(s.out, "Error updating member: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Member updated successfully!")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *shell) handleViewMember() {
	name, ok := s.ask("Member name to view info: ")
	if !ok {
		return
	}
	m := s.reg.FindMember(name)
	if m == nil {
		fmt.Fprintln(s.out, "Member not found!")
		return
	}

	fmt.Fprintln(s.out, "=== Member Details ===")
	fmt.Fprintln(s.out, lending.MemberDetails(m))

	owned := m.OwnedItems()
	fmt.Fprintf(s.out, "Owned items (%d):\n", len(owned))
	for _, it := range owned {
		fmt.Fprintf(s.out, "  - %s (%d/day, %d contract(s))\n", it.Name(), it.CostPerDay(), len(it.Contracts()))
	}

	borrowed := m.Contracts()
	fmt.Fprintf(s.out, "Borrowed (%d):\n", len(borrowed))
	for _, c := range borrowed {
		fmt.Fprintf(s.out, "  - %s from %s to %s (%d credits)\n",
			c.Item().Name(), c.StartDate().Format(lending.DateLayout), c.EndDate().Format(lending.DateLayout), c.CreditsTransferred())
	}
}

func (s *shell) handleListMembers() {
	fmt.Fprintln(s.out, "============ All Members ============")
	members := s.reg.Members()
	if len(members) == 0 {
		fmt.Fprintln(s.out, "No members available.")
		return
	}
	fmt.Fprintf(s.out, "%-8s %-25s %-30s %-8s %-5s\n", "ID", "Name", "Email", "Credits", "Items")
	fmt.Fprintln(s.out, strings.Repeat("-", 80))
	for _, m := range members {
		fmt.Fprintln(s.out, lending.PrettyMember(m))
	}
}

func (s *shell) handleListItems() {
	fmt.Fprintln(s.out, "============ All Items ============")
	items := s.reg.Items()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items available.")
		return
	}
	fmt.Fprintf(s.out, "%-8s %-20s %-18s %-20s %-6s %-5s\n", "ID", "Name", "Category", "Owner", "Cost", "Lent")
	fmt.Fprintln(s.out, strings.Repeat("-", 82))
	for _, it := range items {
		fmt.Fprintln(s.out, lending.PrettyItem(it))
	}
}

func (s *shell) handleListContracts() {
	fmt.Fprintln(s.out, "============ All Contracts ============")
	contracts := s.reg.Contracts()
	if len(contracts) == 0 {
		fmt.Fprintln(s.out, "No contracts available.")
		return
	}
	for _, c := range contracts {
		fmt.Fprintln(s.out, "_______________________")
		fmt.Fprintln(s.out, lending.ContractInfo(c))
	}
}

func (s *shell) handleAdvanceTime() {
	day := s.reg.AdvanceDay()
	fmt.Fprintf(s.out, "Time advanced to day %d\n", day)
}

func (s *shell) handleExport() {
	buf, err := lending.MarshalSnapshot(s.reg.Snapshot())
	if err != nil {
		fmt.Fprintf(s.out, "Error exporting state: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, string(buf))
}
