package order_test

import (
	"testing"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should snapshot analysis fields", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "Blood Chemistry", decimal.NewFromFloat(150.50), "panel")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.AnalysisID().IsEqual(validID))
		assert.Equal(t, "Blood Chemistry", item.Name())
		assert.True(t, item.UnitPrice().Equal(decimal.NewFromFloat(150.50)))
		assert.Equal(t, "panel", item.Description())
	})

	t.Run("should fail with invalid analysis id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLineItem(invalidID, "Blood Chemistry", decimal.NewFromInt(100), "")

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLineItem(validID, "", decimal.NewFromInt(100), "")

		require.Error(t, err)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewLineItem(validID, "Blood Chemistry", decimal.NewFromInt(-1), "")

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var item order.LineItem

		assert.Equal(t, order.ErrLineItemIsNotConstructed, item.Validate())
	})
}
