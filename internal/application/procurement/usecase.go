package procurement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
	"github.com/ceylonpepper/pepperworks-api/internal/application/sequence"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/pkg/logger"
)

// UseCase expone el flujo de compras. La entrega corre en transacción
// (orden + crédito al libro); el pago al agricultor se genera después del
// commit: si falla, la entrega queda firme y el faltante se registra en el
// log para conciliación manual.
type UseCase struct {
	orders    repository.RawMaterialOrderRepository
	farmers   repository.FarmerRepository
	payments  repository.FarmerPaymentRepository
	sequences repository.SequenceRepository
	tx        TxRunner
	log       *logger.Logger
}

// NewUseCase crea el caso de uso de compras.
func NewUseCase(
	orders repository.RawMaterialOrderRepository,
	farmers repository.FarmerRepository,
	payments repository.FarmerPaymentRepository,
	sequences repository.SequenceRepository,
	tx TxRunner,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orders:    orders,
		farmers:   farmers,
		payments:  payments,
		sequences: sequences,
		tx:        tx,
		log:       log,
	}
}

// CreateOrder crea una orden Pending a un agricultor. La cantidad solicitada
// no puede exceder la capacidad mensual del agricultor para ese tipo.
func (uc *UseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.IsValidPepperType(req.RawMaterialType) {
		return nil, fmt.Errorf("%w: tipo de pimienta desconocido %q", domain.ErrInvalidInput, req.RawMaterialType)
	}
	if !req.RequestedQtyKg.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad solicitada debe ser mayor a cero", domain.ErrInvalidInput)
	}
	farmer, err := uc.farmers.GetByID(req.FarmerID)
	if err != nil {
		return nil, err
	}
	if farmer.Status != entity.FarmerStatusActive {
		return nil, fmt.Errorf("%w: el agricultor no está activo", domain.ErrInvalidInput)
	}
	if req.RequestedQtyKg.GreaterThan(farmer.CapacityPerMonth.For(req.RawMaterialType)) {
		return nil, domain.ErrCapacityExceeded
	}

	var created *entity.RawMaterialOrder
	err = uc.tx.RunProcurement(ctx, func(r TxRepos) error {
		rmOrderID, err := sequence.NextOrderID(r.Sequences)
		if err != nil {
			return err
		}
		o := &entity.RawMaterialOrder{
			ID:              uuid.NewString(),
			RMOrderID:       rmOrderID,
			RawMaterialType: req.RawMaterialType,
			RequestedQtyKg:  req.RequestedQtyKg,
			FarmerID:        farmer.ID,
			Status:          entity.OrderStatusPending,
		}
		if err := r.Orders.Create(o); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(created)
	return &resp, nil
}

// GetOrder devuelve una orden por su ID humano.
func (uc *UseCase) GetOrder(ctx context.Context, rmOrderID string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByRMOrderID(rmOrderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

// ListOrders lista órdenes con filtros opcionales por estado y tipo.
func (uc *UseCase) ListOrders(ctx context.Context, status, rawMaterialType string) ([]dto.OrderResponse, error) {
	os, err := uc.orders.List(repository.OrderFilter{
		Status:          status,
		RawMaterialType: rawMaterialType,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Deliver marca la entrega de una orden. En una sola transacción: bloquea la
// orden (una orden Delivered no puede entregarse otra vez), valida que lo
// entregado no exceda lo solicitado y acredita el libro de materia prima.
// Tras el commit genera el pago al agricultor y estampa su última fecha de
// suministro; si el pago falla, la entrega queda firme y el faltante se
// registra en el log para conciliación.
func (uc *UseCase) Deliver(ctx context.Context, rmOrderID string, req dto.DeliverOrderRequest) (*dto.OrderResponse, error) {
	if !req.DeliveredQtyKg.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad entregada debe ser mayor a cero", domain.ErrInvalidInput)
	}

	var delivered *entity.RawMaterialOrder
	err := uc.tx.RunProcurement(ctx, func(r TxRepos) error {
		o, err := r.Orders.GetByRMOrderIDForUpdate(rmOrderID)
		if err != nil {
			return err
		}
		if o.Status == entity.OrderStatusDelivered {
			return domain.ErrAlreadyDelivered
		}
		if req.DeliveredQtyKg.GreaterThan(o.RequestedQtyKg) {
			return domain.ErrOverDelivery
		}
		if err := inventory.CreditLedger(r.Materials, r.Sequences, o.RawMaterialType, req.DeliveredQtyKg); err != nil {
			return err
		}
		now := time.Now()
		o.DeliveredQtyKg = req.DeliveredQtyKg
		o.Status = entity.OrderStatusDelivered
		o.DeliveredAt = &now
		if err := r.Orders.Update(o); err != nil {
			return err
		}
		delivered = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.settlePayment(delivered)

	resp := toOrderResponse(delivered)
	return &resp, nil
}

// settlePayment genera el pago de una orden entregada (a lo sumo uno por
// orden) y estampa la última fecha de suministro del agricultor. Best effort:
// cualquier falla se registra y no revierte la entrega.
func (uc *UseCase) settlePayment(o *entity.RawMaterialOrder) {
	if _, err := uc.payments.GetByRMOrderID(o.RMOrderID); err == nil {
		return // ya existe pago para esta orden
	} else if !errors.Is(err, domain.ErrNotFound) {
		uc.log.Error().Err(err).Str("rmOrderId", o.RMOrderID).
			Msg("no se pudo verificar el pago de la orden")
		return
	}

	farmer, err := uc.farmers.GetByID(o.FarmerID)
	if err != nil {
		uc.log.Error().Err(err).Str("rmOrderId", o.RMOrderID).Str("farmerId", o.FarmerID).
			Msg("agricultor no encontrado al generar el pago")
		return
	}
	paymentID, err := sequence.NextPaymentID(uc.sequences)
	if err != nil {
		uc.log.Error().Err(err).Str("rmOrderId", o.RMOrderID).
			Msg("no se pudo generar el ID del pago")
		return
	}
	pricePerKg := farmer.PricePerUnit.For(o.RawMaterialType)
	p := &entity.FarmerPayment{
		ID:             uuid.NewString(),
		PaymentID:      paymentID,
		FarmerID:       farmer.ID,
		RMOrderID:      o.RMOrderID,
		PepperType:     o.RawMaterialType,
		DeliveredQtyKg: o.DeliveredQtyKg,
		PricePerKg:     pricePerKg,
		Amount:         o.DeliveredQtyKg.Mul(pricePerKg),
	}
	if err := uc.payments.Create(p); err != nil {
		uc.log.Error().Err(err).Str("rmOrderId", o.RMOrderID).Str("paymentId", paymentID).
			Msg("no se pudo registrar el pago de la entrega")
		return
	}

	if o.DeliveredAt != nil {
		if err := uc.farmers.TouchLastSupply(farmer.ID, *o.DeliveredAt); err != nil {
			uc.log.Warn().Err(err).Str("farmerId", farmer.ID).
				Msg("no se pudo estampar la última fecha de suministro")
		}
	}
}

// DeleteOrder elimina una orden Pending. Las órdenes Delivered ya movieron
// stock y generaron pago: no se eliminan.
func (uc *UseCase) DeleteOrder(ctx context.Context, rmOrderID string) error {
	o, err := uc.orders.GetByRMOrderID(rmOrderID)
	if err != nil {
		return err
	}
	if o.Status == entity.OrderStatusDelivered {
		return domain.ErrCannotDeleteDelivered
	}
	return uc.orders.Delete(o.ID)
}

// EligibleFarmers devuelve los agricultores activos cuya capacidad mensual
// del tipo dado cubre la cantidad solicitada.
func (uc *UseCase) EligibleFarmers(ctx context.Context, q dto.EligibleFarmersQuery) ([]dto.EligibleFarmerResponse, error) {
	if !entity.IsValidPepperType(q.MaterialType) {
		return nil, fmt.Errorf("%w: tipo de pimienta desconocido %q", domain.ErrInvalidInput, q.MaterialType)
	}
	if q.RequestedQtyKg.IsNegative() {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	fs, err := uc.farmers.ListEligible(q.MaterialType, q.RequestedQtyKg)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EligibleFarmerResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, dto.EligibleFarmerResponse{
			ID:               f.ID,
			FarmerID:         f.FarmerID,
			Name:             f.Name,
			FarmAddress:      f.FarmLocation.Address,
			CapacityPerMonth: f.CapacityPerMonth.For(q.MaterialType),
			PricePerKg:       f.PricePerUnit.For(q.MaterialType),
		})
	}
	return out, nil
}

// ListPayments lista los pagos generados; farmerID vacío devuelve todos.
func (uc *UseCase) ListPayments(ctx context.Context, farmerID string) ([]dto.PaymentResponse, error) {
	ps, err := uc.payments.List(farmerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// GetPayment devuelve un pago por su ID humano (FP-####).
func (uc *UseCase) GetPayment(ctx context.Context, paymentID string) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByPaymentID(paymentID)
	if err != nil {
		return nil, err
	}
	resp := toPaymentResponse(p)
	return &resp, nil
}

func toOrderResponse(o *entity.RawMaterialOrder) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              o.ID,
		RMOrderID:       o.RMOrderID,
		RawMaterialType: o.RawMaterialType,
		RequestedQtyKg:  o.RequestedQtyKg,
		DeliveredQtyKg:  o.DeliveredQtyKg,
		FarmerID:        o.FarmerID,
		Status:          o.Status,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.FarmerPayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:             p.ID,
		PaymentID:      p.PaymentID,
		FarmerID:       p.FarmerID,
		RMOrderID:      p.RMOrderID,
		PepperType:     p.PepperType,
		DeliveredQtyKg: p.DeliveredQtyKg,
		PricePerKg:     p.PricePerKg,
		Amount:         p.Amount,
		CreatedAt:      p.CreatedAt,
	}
}
