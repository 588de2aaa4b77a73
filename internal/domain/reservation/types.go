package reservation

type Status string

const (
	StatusReserved   Status = "Reserved"
	StatusConfirmed  Status = "Confirmed"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "No-Show"
	StatusCheckedIn  Status = "Checked-In"
	StatusCheckedOut Status = "Checked-Out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCancelled, StatusNoShow, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition leaves the status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusNoShow, StatusCheckedOut:
		return true
	default:
		return false
	}
}
