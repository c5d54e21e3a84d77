package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/presensia/attendance-backend-go/internal/domain/rfid"
	"github.com/presensia/attendance-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	db *database.DB
}

// GetByUID implements rfid.DeviceRepository.
func (r *deviceRepository) GetByUID(ctx context.Context, deviceUID string) (*rfid.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, device_uid, name, is_active, created_at, updated_at
		FROM devices
		WHERE device_uid = $1
	`

	var d rfid.Device
	err := q.QueryRow(ctx, query, deviceUID).Scan(
		&d.ID, &d.DeviceUID, &d.Name, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device by UID: %w", err)
	}

	return &d, nil
}

func NewDeviceRepository(db *database.DB) rfid.DeviceRepository {
	return &deviceRepository{db: db}
}

type cardRepository struct {
	db *database.DB
}

// GetByUID implements rfid.CardRepository.
func (r *cardRepository) GetByUID(ctx context.Context, cardUID string) (*rfid.Card, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, uid, user_id, created_at, updated_at
		FROM user_rfids
		WHERE uid = $1
	`

	var c rfid.Card
	err := q.QueryRow(ctx, query, cardUID).Scan(
		&c.ID, &c.UID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get card by UID: %w", err)
	}

	return &c, nil
}

func NewCardRepository(db *database.DB) rfid.CardRepository {
	return &cardRepository{db: db}
}

type scanRepository struct {
	db *database.DB
}

// Create implements rfid.ScanRepository.
func (r *scanRepository) Create(ctx context.Context, scan rfid.Scan) (rfid.Scan, error) {
	q := GetQuerier(ctx, r.db)

	if scan.ID == "" {
		scan.ID = uuid.NewString()
	}

	query := `
		INSERT INTO rfid_scans (id, device_uid, card_uid, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, scan.ID, scan.DeviceUID, scan.CardUID, scan.UserID).
		Scan(&scan.CreatedAt)
	if err != nil {
		return rfid.Scan{}, fmt.Errorf("failed to create rfid scan: %w", err)
	}

	return scan, nil
}

// SetUser implements rfid.ScanRepository.
func (r *scanRepository) SetUser(ctx context.Context, scanID string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE rfid_scans SET user_id = $1 WHERE id = $2`

	if _, err := q.Exec(ctx, query, userID, scanID); err != nil {
		return fmt.Errorf("failed to set scan user: %w", err)
	}

	return nil
}

func NewScanRepository(db *database.DB) rfid.ScanRepository {
	return &scanRepository{db: db}
}
