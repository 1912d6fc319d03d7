package order

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidActor(actor string) bool {
	return strings.TrimSpace(actor) != ""
}
