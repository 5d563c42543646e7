package lending

import "errors"

var (
	// ErrInvalidItem is returned when an item is constructed with missing fields or a negative cost.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidContract is returned when a nil contract is bound to an item.
	ErrInvalidContract = errors.New("invalid contract")
	// ErrInsufficientCredits is returned when a debit exceeds the member's balance.
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrMemberNotFound is returned when an owner name does not resolve to a member.
	ErrMemberNotFound = errors.New("member not found")
	// ErrPartyNotFound is returned when a borrower or an item of a contract cannot be resolved.
	ErrPartyNotFound = errors.New("borrower or item not found")
	// ErrNotAvailable is returned when the requested dates overlap an existing contract.
	ErrNotAvailable = errors.New("item is not available for the selected dates")
	// ErrInvalidDateRange is returned when a contract does not end after it starts.
	ErrInvalidDateRange = errors.New("end date must be after start date")
	// ErrNegativeAmount is returned when a credit or debit amount is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrCreditOverflow is returned when a credit would exceed the largest representable balance.
	ErrCreditOverflow = errors.New("credit balance overflow")
	// ErrInvalidDate is returned when a date string is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Outcome is the result of a contract request as reported to the front end.
type Outcome int

const (
	Created Outcome = iota
	InsufficientCredits
	NotAvailableOrNotFound
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "Contract created successfully!"
	case InsufficientCredits:
		return "Not enough credits for the borrower."
	default:
		return "Borrower or Item not found, or item is not available for the selected dates."
	}
}

// OutcomeOf maps a contract error onto the outward outcome. Not-found, overlap and
// bad date ranges are deliberately merged.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Created
	case errors.Is(err, ErrInsufficientCredits):
		return InsufficientCredits
	default:
		return NotAvailableOrNotFound
	}
}

// ItemOutcome is the result of an add item request as reported to the front end.
type ItemOutcome int

const (
	Added ItemOutcome = iota
	MemberNotFound
	// Invalid covers item validation failures, e.g. a negative cost per day.
	Invalid
)

// ItemOutcomeOf maps an AddItem error onto the outward outcome.
func ItemOutcomeOf(err error) ItemOutcome {
	switch {
	case err == nil:
		return Added
	case errors.Is(err, ErrMemberNotFound):
		return MemberNotFound
	default:
		return Invalid
	}
}

// Message renders the outcome the way the menu reports it.
func (o ItemOutcome) Message(ownerName string) string {
	switch o {
	case Added:
		return "Item added successfully for " + ownerName
	case MemberNotFound:
		return "Member not found!"
	default:
		return "Item could not be added."
	}
}
