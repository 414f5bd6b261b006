package timesheet

// MatchesClient reports whether a row's client column is exactly the
// requested client name. Comparison is case-sensitive and nothing is trimmed.
func MatchesClient(clientColumnValue, clientNameFilter string) bool {
	return clientColumnValue == clientNameFilter
}
