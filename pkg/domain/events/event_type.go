package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeAccountOpened     EventType = "Account.Opened"
	EventTypeFundsDeposited    EventType = "Funds.Deposited"
	EventTypeFundsWithdrawn    EventType = "Funds.Withdrawn"
	EventTypeOperationRejected EventType = "Operation.Rejected"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
