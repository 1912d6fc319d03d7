package order

import "dispatch/internal/entities"

// transitions is the closed edge table of the order lifecycle. Anything not
// listed here is rejected with ErrInvalidTransition.
var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:    {entities.OrderPreparing, entities.OrderCancelled},
	entities.OrderPreparing:  {entities.OrderReady, entities.OrderCancelled},
	entities.OrderReady:      {entities.OrderDelivering, entities.OrderProblem},
	entities.OrderDelivering: {entities.OrderDelivered, entities.OrderProblem},
	entities.OrderProblem:    {entities.OrderReady, entities.OrderCancelled},
	entities.OrderDelivered:  {},
	entities.OrderCancelled:  {},
}

func CanTransition(from, to entities.OrderStatusType) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func isKnownStatus(s entities.OrderStatusType) bool {
	_, ok := transitions[s]
	return ok
}

// clearsLease reports whether entering the status drops the claim lease.
// Terminal statuses and problem free the order for re-triage.
func clearsLease(to entities.OrderStatusType) bool {
	return to.IsTerminal() || to == entities.OrderProblem
}
