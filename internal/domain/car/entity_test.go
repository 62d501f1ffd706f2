//go:build unit

package car_test

import (
	"strings"
	"testing"

	"car-rental-pricing/internal/domain/car"
	"car-rental-pricing/internal/domain/rate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCar(t *testing.T) {
	card, err := rate.NewCard(decimal.NewFromInt(100), decimal.NewFromInt(600), decimal.NewFromInt(2000))
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		id := uuid.New()
		c, err := car.NewCar(id, "  Toyota Corolla  ", car.StatusActive, card)
		require.NoError(t, err)

		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Toyota Corolla", c.Name())
		assert.True(t, c.IsRentable())
		assert.True(t, c.RateCard().Weekly().Equal(decimal.NewFromInt(600)))
	})

	testCases := []struct {
		name   string
		carNm  string
		status car.Status
		errIs  error
	}{
		{name: "empty name", carNm: "", status: car.StatusActive, errIs: car.ErrEmptyCarName},
		{name: "whitespace name", carNm: "   ", status: car.StatusActive, errIs: car.ErrEmptyCarName},
		{name: "name too long", carNm: strings.Repeat("a", car.MaxCarNameLength+1), status: car.StatusActive, errIs: car.ErrCarNameTooLong},
		{name: "unknown status", carNm: "Civic", status: car.Status("stolen"), errIs: car.ErrInvalidStatus},
		{name: "maintenance is valid", carNm: "Civic", status: car.StatusMaintenance},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := car.NewCar(uuid.New(), tc.carNm, tc.status, card)
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, c)
			} else {
				require.Nil(t, c)
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("only active cars are rentable", func(t *testing.T) {
		for _, s := range []car.Status{car.StatusMaintenance, car.StatusRetired} {
			c, err := car.NewCar(uuid.New(), "Civic", s, card)
			require.NoError(t, err)
			assert.False(t, c.IsRentable(), s.String())
		}
	})
}
