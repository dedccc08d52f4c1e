package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrNICAlreadyExists      = errors.New("ya existe un agricultor con ese NIC")
	ErrMaterialNotFound      = errors.New("materia prima no encontrada")
	ErrInsufficientStock     = errors.New("stock insuficiente de materia prima")
	ErrCapacityExceeded      = errors.New("la cantidad solicitada excede la capacidad mensual del agricultor")
	ErrAlreadyDelivered      = errors.New("la orden ya fue entregada")
	ErrOverDelivery          = errors.New("la cantidad entregada no puede exceder la solicitada")
	ErrCannotDeleteDelivered = errors.New("no se pueden eliminar órdenes entregadas")
)
