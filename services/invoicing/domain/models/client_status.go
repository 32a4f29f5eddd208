package models

// ClientStatus is the lifecycle state of a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
	ClientArchived ClientStatus = "ARCHIVED"
)

// String returns the underlying status value.
func (s ClientStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known client states.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientArchived:
		return true
	}
	return false
}
