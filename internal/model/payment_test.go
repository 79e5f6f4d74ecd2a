package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentIsLate(t *testing.T) {
	due := NewDate(2024, time.January, 10)

	late := Payment{PaymentDate: NewDate(2024, time.January, 15), DueDate: &due}
	assert.True(t, late.IsLate())

	onTime := Payment{PaymentDate: NewDate(2024, time.January, 5), DueDate: &due}
	assert.False(t, onTime.IsLate())

	sameDay := Payment{PaymentDate: NewDate(2024, time.January, 10), DueDate: &due}
	assert.False(t, sameDay.IsLate())

	noDue := Payment{PaymentDate: NewDate(2024, time.January, 15)}
	assert.False(t, noDue.IsLate())

	noPaymentDate := Payment{DueDate: &due}
	assert.False(t, noPaymentDate.IsLate())
}

func TestParsePaymentEnums(t *testing.T) {
	_, err := ParsePaymentType("RENT")
	assert.NoError(t, err)
	_, err = ParsePaymentType("TIP")
	assert.Error(t, err)

	_, err = ParsePaymentMethod("BANK_TRANSFER")
	assert.NoError(t, err)
	_, err = ParsePaymentMethod("BARTER")
	assert.Error(t, err)

	_, err = ParsePaymentStatus("REFUNDED")
	assert.NoError(t, err)
	_, err = ParsePaymentStatus("VOID")
	assert.Error(t, err)
}
