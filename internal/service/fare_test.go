package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStandardFares(t *testing.T) {
	fares := StandardFares()

	assert.True(t, fares.Adult.Equal(decimal.NewFromInt(25000)))
	assert.True(t, fares.Disabled.Equal(decimal.NewFromInt(12500)))
	assert.True(t, fares.Child.Equal(decimal.NewFromInt(17500)))
	assert.True(t, fares.InfantSeat.Equal(decimal.NewFromInt(6250)))
}
