package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name *string `json:"name" validate:"required"`
	Date string  `json:"date" validate:"required,calendar_date"`
}

func TestValidator_Struct(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	name := "x"

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, v.Struct(sample{Name: &name, Date: "2024-01-01"}))
	})

	t.Run("uses json names and english messages", func(t *testing.T) {
		verr := v.Struct(sample{Date: "01/01/2024"})
		require.NotNil(t, verr)
		require.Len(t, verr.Fields, 2)

		assert.Equal(t, "name", verr.Fields[0].Field)
		assert.Equal(t, "name is a required field", verr.Fields[0].Message)
		assert.Equal(t, "date", verr.Fields[1].Field)
		assert.Equal(t, "date must be a date formatted as YYYY-MM-DD", verr.Fields[1].Message)
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 5, d.Day())

	_, err = ParseDate("2024-03-05T10:00:00Z")
	assert.NoError(t, err)

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}
