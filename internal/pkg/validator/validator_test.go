package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@campus.edu"))
	assert.True(t, IsValidEmail("first.last+tag@sub.campus.edu"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidAttendanceCode(t *testing.T) {
	assert.True(t, IsValidAttendanceCode("A7K2PQ"))
	assert.True(t, IsValidAttendanceCode("a7k2pq"))
	assert.False(t, IsValidAttendanceCode("A7K2P"))   // too short
	assert.False(t, IsValidAttendanceCode("A7K2PQR")) // too long
	assert.False(t, IsValidAttendanceCode("A7K2P!"))
	assert.False(t, IsValidAttendanceCode(""))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("07:30"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("7:3"))
	assert.False(t, IsValidClockTime("nope"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-03-01")
	assert.True(t, ok)
	_, ok = IsValidDate("01-03-2026")
	assert.False(t, ok)
}

func TestCoordinateBounds(t *testing.T) {
	assert.True(t, IsValidLatitude(10.8411))
	assert.False(t, IsValidLatitude(91))
	assert.False(t, IsValidLatitude(-91))
	assert.True(t, IsValidLongitude(106.8098))
	assert.False(t, IsValidLongitude(181))
	assert.False(t, IsValidLongitude(-181))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "code", Message: "code is required"},
		{Field: "slot_id", Message: "slot_id is required"},
	}
	assert.Equal(t, "code: code is required; slot_id: slot_id is required", errs.Error())
	m := errs.ToMap()
	assert.Equal(t, "code is required", m["code"])
	assert.Len(t, m, 2)
}
