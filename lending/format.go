package lending

import "fmt"

// MemberDetails formats a member for the "view member" screens.
func MemberDetails(m *Member) string {
	return fmt.Sprintf("Member ID: %s\nName: %s\nEmail: %s\nPhone: %s\nCredits: %d",
		ShortID(m.id), m.name, m.email, m.phone, m.credits)
}

// ItemInfo formats an item for the "view items" screen.
func ItemInfo(i *Item) string {
	return fmt.Sprintf("Item Name: %s\nDescription: %s\nCategory: %s\nOwner: %s\nCost Per Day: %d",
		i.name, i.description, i.category, i.owner.name, i.costPerDay)
}

// ContractInfo formats a contract for the "view contracts" screen.
func ContractInfo(c *Contract) string {
	return fmt.Sprintf("Contract ID: %s\nBorrower: %s\nItem: %s\nPeriod: %s to %s\nCredits Transferred: %d",
		ShortID(c.id), c.borrower.name, c.item.name,
		c.start.Format(DateLayout), c.end.Format(DateLayout), c.creditsTransferred)
}

// PrettyMember formats a member as one row of the member table.
func PrettyMember(m *Member) string {
	return fmt.Sprintf("%-8s %-25s %-30s %-8d %-5d", ShortID(m.id), Truncate(m.name, 25), Truncate(m.email, 30), m.credits, len(m.ownedItems))
}

// PrettyItem formats an item as one row of the item table.
func PrettyItem(i *Item) string {
	return fmt.Sprintf("%-8s %-20s %-18s %-20s %-6d %-5d", ShortID(i.id), Truncate(i.name, 20), Truncate(i.category, 18), Truncate(i.owner.name, 20), i.costPerDay, len(i.contracts))
}

// Truncate shortens s to at most maxLength runes, marking the cut with "...".
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
