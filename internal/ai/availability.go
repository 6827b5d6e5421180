package ai

// Availability is the state of the on-device inference capability.
type Availability int

const (
	// AvailabilityUnchecked means no probe has happened yet.
	AvailabilityUnchecked Availability = iota

	// AvailabilityUnsupported means no gateway exists at all. Permanent.
	AvailabilityUnsupported

	// AvailabilityUnavailable means the gateway exists but cannot serve
	// (server down, probe failed).
	AvailabilityUnavailable

	// AvailabilityDownloadable means the runtime is up but the model
	// still has to be fetched; first use triggers the download.
	AvailabilityDownloadable

	// AvailabilityAvailable means the model is ready to prompt.
	AvailabilityAvailable
)

func (a Availability) String() string {
	switch a {
	case AvailabilityUnchecked:
		return "unchecked"
	case AvailabilityUnsupported:
		return "unsupported"
	case AvailabilityUnavailable:
		return "unavailable"
	case AvailabilityDownloadable:
		return "downloadable"
	case AvailabilityAvailable:
		return "available"
	default:
		return "unknown"
	}
}

// Usable reports whether a session can be created in this state.
func (a Availability) Usable() bool {
	return a == AvailabilityAvailable || a == AvailabilityDownloadable
}
