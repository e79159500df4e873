package product_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, err := kernel.PriceFromString("16000")
	require.NoError(t, err)

	t.Run("should create product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "fried chicken", price)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "fried chicken", p.Name())
		assert.True(t, p.Price().IsEqual(price))
	})

	t.Run("should join every validation error", func(t *testing.T) {
		p, err := product.NewProduct(kernel.UUID{}, " ", kernel.Price{})

		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestProduct_Validate(t *testing.T) {
	var nilProduct *product.Product
	var zero product.Product

	assert.Equal(t, product.ErrProductIsNotConstructed, nilProduct.Validate())
	assert.Equal(t, product.ErrProductIsNotConstructed, zero.Validate())
}
