package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_ComputePayPrice(t *testing.T) {
	order := &Order{
		RawPrice:      2000,
		TaxFee:        200,
		AdditionalFee: 100,
		CourierFee:    3000,
	}

	assert.Equal(t, int64(5300), order.ComputePayPrice())
}

func TestOrder_SellerShare_ExcludesTaxAndCourierFee(t *testing.T) {
	order := &Order{
		RawPrice:      2000,
		TaxFee:        200,
		AdditionalFee: 100,
		CourierFee:    3000,
	}

	assert.Equal(t, int64(2100), order.SellerShare())
}

func TestOrder_ZeroFees(t *testing.T) {
	order := &Order{RawPrice: 1500}

	assert.Equal(t, int64(1500), order.ComputePayPrice())
	assert.Equal(t, int64(1500), order.SellerShare())
}
