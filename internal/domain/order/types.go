package order

// Status is the order lifecycle state. Transitions happen only through
// the aggregate's methods; see entity.go for the transition table.
type Status string

const (
	StatusSubmitted          Status = "submitted"
	StatusAwaitingValidation Status = "awaiting_validation"
	StatusStockConfirmed     Status = "stock_confirmed"
	StatusPaid               Status = "paid"
	StatusShipped            Status = "shipped"
	StatusCancelled          Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known lifecycle states.
// Used when rehydrating aggregates from storage.
func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusAwaitingValidation, StatusStockConfirmed,
		StatusPaid, StatusShipped, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave s.
func (s Status) IsTerminal() bool {
	return s == StatusShipped || s == StatusCancelled
}
