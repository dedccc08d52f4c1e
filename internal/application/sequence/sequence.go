// Package sequence genera los identificadores humanos de la aplicación a
// partir del contador atómico (repository.SequenceRepository). El patrón
// "buscar el máximo y sumar uno" del sistema anterior quedaba expuesto a
// IDs duplicados entre creaciones concurrentes; aquí toda secuencia pasa
// por el contador.
package sequence

import (
	"fmt"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

// Formatos de ID humano por entidad.
func FormatProductID(n int64) string     { return fmt.Sprintf("PID-%03d", n) }
func FormatRawMaterialID(n int64) string { return fmt.Sprintf("RM-%03d", n) }
func FormatOrderID(n int64) string       { return fmt.Sprintf("RMO-%04d", n) }
func FormatEmployeeID(n int64) string    { return fmt.Sprintf("EMP%03d", n) }
func FormatPaymentID(n int64) string     { return fmt.Sprintf("FP-%04d", n) }

// NextProductID genera el siguiente PID-### usando el contador dado
// (normalmente el repo atado a la transacción de creación).
func NextProductID(seq repository.SequenceRepository) (string, error) {
	n, err := seq.Next(repository.SeqProduct)
	if err != nil {
		return "", fmt.Errorf("sequence product: %w", err)
	}
	return FormatProductID(n), nil
}

// NextRawMaterialID genera el siguiente RM-###.
func NextRawMaterialID(seq repository.SequenceRepository) (string, error) {
	n, err := seq.Next(repository.SeqRawMaterial)
	if err != nil {
		return "", fmt.Errorf("sequence raw material: %w", err)
	}
	return FormatRawMaterialID(n), nil
}

// NextOrderID genera el siguiente RMO-####.
func NextOrderID(seq repository.SequenceRepository) (string, error) {
	n, err := seq.Next(repository.SeqRMOrder)
	if err != nil {
		return "", fmt.Errorf("sequence rm order: %w", err)
	}
	return FormatOrderID(n), nil
}

// NextEmployeeID genera el siguiente EMP###.
func NextEmployeeID(seq repository.SequenceRepository) (string, error) {
	n, err := seq.Next(repository.SeqEmployee)
	if err != nil {
		return "", fmt.Errorf("sequence employee: %w", err)
	}
	return FormatEmployeeID(n), nil
}

// NextPaymentID genera el siguiente FP-####.
func NextPaymentID(seq repository.SequenceRepository) (string, error) {
	n, err := seq.Next(repository.SeqPayment)
	if err != nil {
		return "", fmt.Errorf("sequence farmer payment: %w", err)
	}
	return FormatPaymentID(n), nil
}
