// Package app provides the core application service for Wails bindings.
package app

// Event names for frontend communication.
const (
	// EventHistoryUpdated carries the full ordered capture list.
	EventHistoryUpdated = "history-updated"
	// EventLiveColor carries the latest live preview sample.
	EventLiveColor = "live-color"
	// EventHotkeyChanged carries the newly active capture combo.
	EventHotkeyChanged = "hotkey-changed"
	// EventPersistError carries a persistence failure message for the operator.
	EventPersistError = "persist-error"
	// EventHexCopied carries the hex string just copied to the clipboard.
	EventHexCopied = "hex-copied"
	// EventDisplayPerm carries whether screen reads are permitted.
	EventDisplayPerm = "display-permission"
)
