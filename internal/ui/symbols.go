package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // In stock, check passed
	SymbolFail     = "✗" // Error
	SymbolPending  = "○" // Idle, standby
	SymbolProgress = "◐" // Detecting
	SymbolComplete = "●" // Online
	SymbolWarning  = "▲" // Low stock
)
