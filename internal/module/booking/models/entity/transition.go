package entity

// transitionRule names the roles allowed to drive one edge of the booking
// state machine. Completion is handled separately because it also requires
// the payment precondition.
type transitionRule struct {
	User     bool
	Provider bool
}

var transitionMatrix = map[BookingStatus]map[BookingStatus]transitionRule{
	BookingPending: {
		BookingAccepted:  {Provider: true},
		BookingCancelled: {User: true, Provider: true},
	},
	BookingAccepted: {
		BookingOngoing:   {Provider: true},
		BookingCancelled: {User: true, Provider: true},
	},
	BookingOngoing: {
		BookingServiceDone: {Provider: true},
		BookingCancelled:   {Provider: true},
	},
	BookingServiceDone: {
		BookingCompleted: {User: true},
		BookingCancelled: {User: true},
	},
}

// TransitionAllowed reports whether from -> to exists in the matrix at all,
// and whether the given role may perform it.
func TransitionAllowed(from, to BookingStatus, role string) (exists bool, permitted bool) {
	next, ok := transitionMatrix[from]
	if !ok {
		return false, false
	}
	rule, ok := next[to]
	if !ok {
		return false, false
	}
	switch role {
	case RoleUser:
		return true, rule.User
	case RoleProvider:
		return true, rule.Provider
	default:
		return true, false
	}
}
