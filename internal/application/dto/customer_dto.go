package dto

import "time"

// RegisterCustomerRequest registro de cliente de la tienda.
type RegisterCustomerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Phone           string `json:"phone" validate:"required"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
}

// LoginCustomerRequest credenciales de login de cliente.
type LoginCustomerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateCustomerProfileRequest actualización del perfil del cliente.
type UpdateCustomerProfileRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	DeliveryAddress *string `json:"deliveryAddress"`
}

// CustomerResponse representación pública de un cliente (sin hash).
type CustomerResponse struct {
	ID              string     `json:"id"`
	CustomerID      int64      `json:"customerId"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Status          string     `json:"status"`
	TotalOrders     int        `json:"totalOrders"`
	LastOrderDate   *time.Time `json:"lastOrderDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CustomerLoginResponse token + cliente autenticado.
type CustomerLoginResponse struct {
	Token    string           `json:"token"`
	Customer CustomerResponse `json:"customer"`
}

// CustomerStatsResponse métricas del módulo de clientes.
type CustomerStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
