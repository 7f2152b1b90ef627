package schedule

import "github.com/slotframe-app/slotframe/internal/httperr"

// ===============================
// Slot Status
// ===============================

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
)

// ===============================
// Validations
// ===============================

// CanBook rejects any slot that already left the available state.
func CanBook(current SlotStatus) error {
	if current != StatusAvailable {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}

// CanRelease allows freeing a slot only from the booked state.
func CanRelease(current SlotStatus) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() SlotStatus {
	return StatusAvailable
}
