package partner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates active customer", func(t *testing.T) {
		customer, err := NewCustomer("Padaria Estrela", "12345678000190")
		require.NoError(t, err)
		assert.True(t, customer.Active)
		assert.Equal(t, 1, customer.GetVersion())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer("", "12345678000190")
		assert.Error(t, err)
	})

	t.Run("rejects name over 200 characters", func(t *testing.T) {
		_, err := NewCustomer(strings.Repeat("a", 201), "")
		assert.Error(t, err)
	})
}

func TestCustomer_Lifecycle(t *testing.T) {
	customer, err := NewCustomer("Padaria Estrela", "")
	require.NoError(t, err)

	customer.UpdateContact("contato@estrela.com.br", "11 4002-8922", "Rua das Flores, 10")
	assert.Equal(t, "contato@estrela.com.br", customer.Email)
	assert.Equal(t, 2, customer.GetVersion())

	require.NoError(t, customer.Rename("Padaria Estrela do Sul"))
	assert.Error(t, customer.Rename(""))

	customer.Deactivate()
	assert.False(t, customer.Active)
	customer.Activate()
	assert.True(t, customer.Active)
}

func TestSupplier_Lifecycle(t *testing.T) {
	supplier, err := NewSupplier("Atacadão Norte", "98765432000121")
	require.NoError(t, err)
	assert.True(t, supplier.Active)

	supplier.Deactivate()
	assert.False(t, supplier.Active)

	_, err = NewSupplier("", "")
	assert.Error(t, err)
}
