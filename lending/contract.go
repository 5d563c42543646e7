package lending

import (
	"fmt"
	"math"
	"time"
)

// ContractResult reports the outcome of a contract request. Contract is set only when
// Outcome is Created; Err carries the detailed cause otherwise.
type ContractResult struct {
	Outcome  Outcome
	Contract *Contract
	Err      error
}

func contractResult(c *Contract, err error) ContractResult {
	return ContractResult{Outcome: OutcomeOf(err), Contract: c, Err: err}
}

// contractFactory decides whether a borrow is legal and, if it is, settles it.
type contractFactory struct {
	ids IDGenerator
}

// create checks every precondition before the first mutation, so a returned error
// means no balance, item or member was touched.
//
//	ERROR: ErrPartyNotFound if borrower or item is nil
//	ERROR: ErrInvalidDateRange if end is not after start
//	ERROR: ErrNotAvailable if [start, end] overlaps a bound contract
//	ERROR: ErrInsufficientCredits if the borrower cannot pay cost per day x days
//	ERROR: ErrCreditOverflow if the owner's balance cannot hold the payment
func (f contractFactory) create(borrower *Member, item *Item, start, end time.Time) (*Contract, error) {
	if borrower == nil || item == nil {
		return nil, ErrPartyNotFound
	}

	start, end = Day(start), Day(end)
	days := DaysBetween(start, end)
	if days <= 0 {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidDateRange, start.Format(DateLayout), end.Format(DateLayout))
	}
	if !item.IsAvailable(start, end) {
		return nil, fmt.Errorf("%w: %s from %s to %s", ErrNotAvailable, item.name, start.Format(DateLayout), end.Format(DateLayout))
	}

	// Compare per day first: the product is only formed once it is known to fit the balance.
	if item.costPerDay > borrower.credits/days {
		return nil, fmt.Errorf("%w: %s has %d, contract costs %d per day for %d days",
			ErrInsufficientCredits, borrower.name, borrower.credits, item.costPerDay, days)
	}
	cost := item.costPerDay * days
	if item.owner != borrower && item.owner.credits > math.MaxInt-cost {
		return nil, fmt.Errorf("%w: %s cannot receive %d", ErrCreditOverflow, item.owner.name, cost)
	}

	id, err := f.ids.New()
	if err != nil {
		return nil, fmt.Errorf("generate contract id: %w", err)
	}

	contract := &Contract{
		id:                 id,
		borrower:           borrower,
		item:               item,
		start:              start,
		end:                end,
		creditsTransferred: cost,
	}

	// Settlement. cost is non-negative and covered by the balance, so none of these fail.
	if err := borrower.Debit(cost); err != nil {
		return nil, err
	}
	if err := item.owner.Credit(cost); err != nil {
		borrower.credits += cost
		return nil, err
	}
	if err := item.BindContract(contract); err != nil {
		borrower.credits += cost
		item.owner.credits -= cost
		return nil, err
	}
	borrower.borrowed = append(borrower.borrowed, contract)

	return contract, nil
}
