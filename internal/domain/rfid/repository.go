package rfid

import "context"

// DeviceRepository defines read access to the device registry.
type DeviceRepository interface {
	// GetByUID retrieves a device by its hardware UID, or nil.
	GetByUID(ctx context.Context, deviceUID string) (*Device, error)
}

// CardRepository defines read access to the card registry.
type CardRepository interface {
	// GetByUID retrieves a card by its UID, or nil.
	GetByUID(ctx context.Context, cardUID string) (*Card, error)
}

// ScanRepository writes the tap audit trail. Appends always succeed
// independent of the business outcome of the tap.
type ScanRepository interface {
	Create(ctx context.Context, scan Scan) (Scan, error)

	// SetUser back-fills the resolved user on an audit row.
	SetUser(ctx context.Context, scanID string, userID string) error
}
