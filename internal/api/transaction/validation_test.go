package transaction

import (
	"FinanceTracker/pkg/response"
	"FinanceTracker/pkg/validation"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *response.ValidationError
	require.ErrorAs(t, err, &verr)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestParseTransactionRequest(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		in, err := ParseTransactionRequest(v, TransactionRequest{
			Description: "Salary",
			Value:       int64Ptr(500000),
			Type:        "entry",
			Date:        "2024-01-01",
			CategoryID:  int64Ptr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(500000), in.Value)
		assert.Equal(t, "2024-01-01", in.Date.Format(DateLayout))
		assert.Equal(t, int64(1), in.CategoryID)
	})

	t.Run("zero value is allowed", func(t *testing.T) {
		_, err := ParseTransactionRequest(v, TransactionRequest{
			Description: "Gift",
			Value:       int64Ptr(0),
			Type:        "entry",
			Date:        "2024-01-01",
			CategoryID:  int64Ptr(1),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown type passes schema validation", func(t *testing.T) {
		in, err := ParseTransactionRequest(v, TransactionRequest{
			Description: "x",
			Value:       int64Ptr(1),
			Type:        "invalid",
			Date:        "2024-01-01",
			CategoryID:  int64Ptr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, "invalid", in.Type)
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		_, err := ParseTransactionRequest(v, TransactionRequest{})
		assert.Equal(t, []string{"description", "value", "type", "date", "category_id"}, fieldNames(t, err))
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := ParseTransactionRequest(v, TransactionRequest{
			Description: "x",
			Value:       int64Ptr(1),
			Type:        "entry",
			Date:        "31/12/2024",
			CategoryID:  int64Ptr(1),
		})
		assert.Equal(t, []string{"date"}, fieldNames(t, err))
	})
}

func TestParseListQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := ParseListQuery("", "", nil)
		require.NoError(t, err)
		assert.Equal(t, ListQuery{Skip: 0, Take: DefaultTake, CategoryIDs: []int64{}}, q)
	})

	t.Run("explicit values", func(t *testing.T) {
		q, err := ParseListQuery("20", "5", []string{"1,2", "2", "7"})
		require.NoError(t, err)
		assert.Equal(t, 20, q.Skip)
		assert.Equal(t, 5, q.Take)
		assert.Equal(t, []int64{1, 2, 7}, q.CategoryIDs)
	})

	t.Run("non integer pagination", func(t *testing.T) {
		_, err := ParseListQuery("a", "b", nil)
		assert.Equal(t, []string{"skip", "take"}, fieldNames(t, err))
	})

	t.Run("out of range pagination", func(t *testing.T) {
		_, err := ParseListQuery("-1", "1000", nil)
		assert.Equal(t, []string{"skip", "take"}, fieldNames(t, err))
	})

	t.Run("bad category id", func(t *testing.T) {
		_, err := ParseListQuery("", "", []string{"1,x"})
		assert.Equal(t, []string{"categories"}, fieldNames(t, err))
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}
