package car

import (
	"errors"
	"strings"

	"car-rental-pricing/internal/domain/rate"

	"github.com/google/uuid"
)

var (
	ErrEmptyCarName   = errors.New("car name cannot be empty")
	ErrCarNameTooLong = errors.New("car name is too long (max 255 characters)")
	ErrInvalidStatus  = errors.New("invalid car status")
)

const (
	MaxCarNameLength = 255
)

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusRetired:
		return true
	default:
		return false
	}
}

type Car struct {
	id       uuid.UUID
	name     string
	status   Status
	rateCard rate.Card
}

func NewCar(id uuid.UUID, name string, status Status, card rate.Card) (*Car, error) {
	if err := validateCarName(name); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Car{
		id:       id,
		name:     strings.TrimSpace(name),
		status:   status,
		rateCard: card,
	}, nil
}

// IsRentable reports whether the car can be quoted at all, independent of bookings.
func (c *Car) IsRentable() bool {
	return c.status == StatusActive
}

func validateCarName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCarName
	}
	if len(name) > MaxCarNameLength {
		return ErrCarNameTooLong
	}
	return nil
}

func (c *Car) ID() uuid.UUID       { return c.id }
func (c *Car) Name() string        { return c.name }
func (c *Car) Status() Status      { return c.status }
func (c *Car) RateCard() rate.Card { return c.rateCard }
