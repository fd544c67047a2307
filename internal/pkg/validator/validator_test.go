package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ops@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-09")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("09/06/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidBranchCode(t *testing.T) {
	assert.True(t, IsValidBranchCode("CTR"))
	assert.True(t, IsValidBranchCode("BR01"))
	assert.False(t, IsValidBranchCode("c"))
	assert.False(t, IsValidBranchCode("ctr"))
	assert.False(t, IsValidBranchCode("TOOLONGBRANCHCODE"))
	assert.False(t, IsValidBranchCode("CT R"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("081234567890"))
	assert.True(t, IsValidPhoneNumber("+62 812-3456-7890"))
	assert.True(t, IsValidPhoneNumber("6281234567890"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("invalid"))
	assert.False(t, IsValidPhoneNumber("071234567890"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "code", Message: "code is required"},
	}
	assert.Equal(t, "name: name is required; code: code is required", errs.Error())
	assert.Equal(t, map[string]string{
		"name": "name is required",
		"code": "code is required",
	}, errs.ToMap())
}
