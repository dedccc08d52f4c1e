package procurement

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

func kg(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestCreateOrder(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)

	resp, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(60),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "RMO-0001", resp.RMOrderID)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, "farmer-1", resp.FarmerID)
}

func TestCreateOrderExceedsCapacity(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 50, 1200)

	_, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(60),
		FarmerID:        "farmer-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCapacityExceeded))
	assert.Empty(t, fx.orders.byRMOrderID)
}

func TestCreateOrderInactiveFarmer(t *testing.T) {
	fx := newFixture()
	fr := fx.seedFarmer("farmer-1", 100, 1200)
	fr.Status = entity.FarmerStatusInactive

	_, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(10),
		FarmerID:        "farmer-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestDeliverCreditsLedgerAndPaysFarmer(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)
	fx.materials.seed(entity.PepperTypeGreen, kg(78), kg(10))

	order, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(60),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)

	delivered, err := fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{
		DeliveredQtyKg: kg(60),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)

	m, _ := fx.materials.GetByType(entity.PepperTypeGreen)
	assert.True(t, m.QuantityKg.Equal(kg(138)), "el libro quedó en %s kg", m.QuantityKg)

	// Un solo pago, a la tarifa verde del agricultor.
	require.Len(t, fx.payments.payments, 1)
	p := fx.payments.payments[0]
	assert.Equal(t, "FP-0001", p.PaymentID)
	assert.Equal(t, order.RMOrderID, p.RMOrderID)
	assert.True(t, p.PricePerKg.Equal(kg(1200)))
	assert.True(t, p.Amount.Equal(kg(72000)))

	// La entrega estampa la última fecha de suministro.
	fr, _ := fx.farmers.GetByID("farmer-1")
	require.NotNil(t, fr.LastSupplyDate)
}

func TestDeliverTwiceIsRejected(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)
	fx.materials.seed(entity.PepperTypeGreen, kg(0), kg(10))

	order, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(40),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)

	_, err = fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(40)})
	require.NoError(t, err)

	_, err = fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(40)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyDelivered))

	// Ni doble crédito ni doble pago.
	m, _ := fx.materials.GetByType(entity.PepperTypeGreen)
	assert.True(t, m.QuantityKg.Equal(kg(40)))
	assert.Len(t, fx.payments.payments, 1)
}

func TestDeliverOverRequestedKeepsOrderPending(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)
	fx.materials.seed(entity.PepperTypeGreen, kg(10), kg(10))

	order, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(40),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)

	_, err = fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(41)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOverDelivery))

	o, _ := fx.orders.GetByRMOrderID(order.RMOrderID)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	m, _ := fx.materials.GetByType(entity.PepperTypeGreen)
	assert.True(t, m.QuantityKg.Equal(kg(10)))
	assert.Empty(t, fx.payments.payments)
}

func TestDeliverMaterializesMissingLedgerRow(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)

	order, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeBlack,
		RequestedQtyKg:  kg(25),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)

	_, err = fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(25)})
	require.NoError(t, err)

	m, err := fx.materials.GetByType(entity.PepperTypeBlack)
	require.NoError(t, err)
	assert.Equal(t, "RM-001", m.RawMaterialID)
	assert.True(t, m.QuantityKg.Equal(kg(25)))
	assert.True(t, m.ReorderLevelKg.Equal(kg(10)))
}

func TestDeliverySurvivesPaymentFailure(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)
	fx.materials.seed(entity.PepperTypeGreen, kg(0), kg(10))
	fx.payments.failCreate = true

	order, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(30),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)

	// El pago falla pero la entrega y el crédito al libro quedan firmes.
	delivered, err := fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(30)})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)

	m, _ := fx.materials.GetByType(entity.PepperTypeGreen)
	assert.True(t, m.QuantityKg.Equal(kg(30)))
	assert.Empty(t, fx.payments.payments)
}

func TestDeleteOrder(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)
	fx.materials.seed(entity.PepperTypeGreen, kg(0), kg(10))

	pending, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(20),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)
	deliveredOrder, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		RawMaterialType: entity.PepperTypeGreen,
		RequestedQtyKg:  kg(20),
		FarmerID:        "farmer-1",
	})
	require.NoError(t, err)
	_, err = fx.uc.Deliver(context.Background(), deliveredOrder.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(20)})
	require.NoError(t, err)

	require.NoError(t, fx.uc.DeleteOrder(context.Background(), pending.RMOrderID))
	_, err = fx.uc.GetOrder(context.Background(), pending.RMOrderID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = fx.uc.DeleteOrder(context.Background(), deliveredOrder.RMOrderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCannotDeleteDelivered))
}

func TestEligibleFarmers(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 100, 1200)
	small := fx.seedFarmer("farmer-2", 30, 1100)
	small.NIC = "887654321V"
	inactive := fx.seedFarmer("farmer-3", 200, 1000)
	inactive.NIC = "199012345678"
	inactive.Status = entity.FarmerStatusInactive

	out, err := fx.uc.EligibleFarmers(context.Background(), dto.EligibleFarmersQuery{
		MaterialType:   entity.PepperTypeGreen,
		RequestedQtyKg: kg(60),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "farmer-1", out[0].ID)
	assert.True(t, out[0].PricePerKg.Equal(kg(1200)))
}

func TestListPaymentsByFarmer(t *testing.T) {
	fx := newFixture()
	fx.seedFarmer("farmer-1", 500, 1000)
	other := fx.seedFarmer("farmer-2", 500, 900)
	other.NIC = "887654321V"
	fx.materials.seed(entity.PepperTypeGreen, kg(0), kg(10))

	for _, farmerID := range []string{"farmer-1", "farmer-2", "farmer-1"} {
		order, err := fx.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
			RawMaterialType: entity.PepperTypeGreen,
			RequestedQtyKg:  kg(10),
			FarmerID:        farmerID,
		})
		require.NoError(t, err)
		_, err = fx.uc.Deliver(context.Background(), order.RMOrderID, dto.DeliverOrderRequest{DeliveredQtyKg: kg(10)})
		require.NoError(t, err)
	}

	all, err := fx.uc.ListPayments(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := fx.uc.ListPayments(context.Background(), "farmer-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
