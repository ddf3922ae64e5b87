package cli

var (
	PrintEntries     = printEntries
	PrintCheckReport = printCheckReport
	NewLogger        = newLogger
)
