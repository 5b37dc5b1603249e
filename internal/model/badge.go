package model

// StatusBadgeColor maps a reader status to the color of its list badge.
// Unknown values render gray, same as offline.
func StatusBadgeColor(status ReaderStatus) string {
	switch status {
	case ReaderStatusOnline:
		return "green"
	case ReaderStatusBusy:
		return "orange"
	default:
		return "gray"
	}
}
