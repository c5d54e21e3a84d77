package rfid

import "time"

// Device is a registered RFID reader.
type Device struct {
	ID        string
	DeviceUID string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Card links a physical RFID card to a user.
type Card struct {
	ID        string
	UID       string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scan is one audit row per tap, valid or not. UserID is back-filled
// once the card resolves to a user.
type Scan struct {
	ID        string
	DeviceUID string
	CardUID   string
	UserID    *string
	CreatedAt time.Time
}
