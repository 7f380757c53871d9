package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Establishments struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID              uuid.UUID          `json:"id"`
	Email           string             `json:"email"`
	PasswordHash    string             `json:"password_hash"`
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	EstablishmentID pgtype.UUID        `json:"establishment_id"`
	IsActive        bool               `json:"is_active"`
	LastLogin       pgtype.Timestamptz `json:"last_login"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type VoucherTiers struct {
	ID              uuid.UUID          `json:"id"`
	EstablishmentID uuid.UUID          `json:"establishment_id"`
	Name            string             `json:"name"`
	MinVolume       pgtype.Numeric     `json:"min_volume"`
	Value           pgtype.Numeric     `json:"value"`
	Active          bool               `json:"active"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type VoucherViews struct {
	ID                uuid.UUID          `json:"id"`
	Code              string             `json:"code"`
	Value             pgtype.Numeric     `json:"value"`
	TierID            pgtype.UUID        `json:"tier_id"`
	TierName          pgtype.Text        `json:"tier_name"`
	Volume            pgtype.Numeric     `json:"volume"`
	VehiclePlate      string             `json:"vehicle_plate"`
	DriverName        string             `json:"driver_name"`
	ReceiptNumber     pgtype.Text        `json:"receipt_number"`
	EstablishmentID   uuid.UUID          `json:"establishment_id"`
	EstablishmentName string             `json:"establishment_name"`
	IssuerID          uuid.UUID          `json:"issuer_id"`
	IssuerName        string             `json:"issuer_name"`
	Status            string             `json:"status"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	RedeemedAt        pgtype.Timestamptz `json:"redeemed_at"`
	RedeemedBy        pgtype.UUID        `json:"redeemed_by"`
	CancelledAt       pgtype.Timestamptz `json:"cancelled_at"`
}

type Vouchers struct {
	ID              uuid.UUID          `json:"id"`
	Code            string             `json:"code"`
	Value           pgtype.Numeric     `json:"value"`
	TierID          pgtype.UUID        `json:"tier_id"`
	Volume          pgtype.Numeric     `json:"volume"`
	VehiclePlate    string             `json:"vehicle_plate"`
	DriverName      string             `json:"driver_name"`
	ReceiptNumber   pgtype.Text        `json:"receipt_number"`
	EstablishmentID uuid.UUID          `json:"establishment_id"`
	IssuerID        uuid.UUID          `json:"issuer_id"`
	IssuerName      string             `json:"issuer_name"`
	Status          string             `json:"status"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	RedeemedAt      pgtype.Timestamptz `json:"redeemed_at"`
	RedeemedBy      pgtype.UUID        `json:"redeemed_by"`
	CancelledAt     pgtype.Timestamptz `json:"cancelled_at"`
	DeletedAt       pgtype.Timestamptz `json:"deleted_at"`
}
