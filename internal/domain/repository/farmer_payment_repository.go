package repository

import "github.com/ceylonpepper/pepperworks-api/internal/domain/entity"

// FarmerPaymentRepository define el puerto de persistencia para pagos a
// agricultores. GetByRMOrderID es la guarda de unicidad: a lo sumo un pago
// por orden.
type FarmerPaymentRepository interface {
	Create(p *entity.FarmerPayment) error
	GetByPaymentID(paymentID string) (*entity.FarmerPayment, error)
	GetByRMOrderID(rmOrderID string) (*entity.FarmerPayment, error)
	List(farmerID string) ([]*entity.FarmerPayment, error)
}
