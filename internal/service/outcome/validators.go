package outcome

import "strings"

func isValidID(value string) bool {
	return strings.TrimSpace(value) != ""
}
