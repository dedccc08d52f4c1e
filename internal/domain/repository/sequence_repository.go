package repository

// SequenceRepository define el puerto del contador atómico de secuencias.
// Next incrementa y devuelve el contador de la clave en una sola operación
// del lado del servidor (read-modify-write atómico); toda generación de IDs
// humanos pasa por aquí. Si el contador no está disponible, la creación que
// lo necesita falla completa.
type SequenceRepository interface {
	Next(key string) (int64, error)
}

// Claves de secuencia conocidas.
const (
	SeqProduct     = "productId"
	SeqRawMaterial = "rawMaterialId"
	SeqRMOrder     = "rmOrderId"
	SeqEmployee    = "employeeId"
	SeqPayment     = "farmerPaymentId"
	SeqFarmer      = "farmerId"
	SeqUser        = "userId"
	SeqCustomer    = "customerId"
)
