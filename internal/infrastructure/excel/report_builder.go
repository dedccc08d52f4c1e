// Package excel arma los reportes descargables de la aplicación como libros
// de Excel (xlsx).
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
)

const sheet = "Sheet1"

// InventoryHistoryWorkbook arma el reporte del historial de inventario y
// devuelve los bytes del xlsx.
func InventoryHistoryWorkbook(entries []dto.HistoryEntryResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Fecha", "Producto", "Nombre", "Tipo de cambio", "Cambio", "Stock previo", "Stock nuevo", "Estado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, e := range entries {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.ProductID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.ChangeType)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), e.ChangeAmount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), e.PreviousStock)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), e.NewStock)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), e.StockStatus)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir historial: %w", err)
	}
	return buf.Bytes(), nil
}

// RawMaterialsWorkbook arma el reporte del libro de materia prima.
func RawMaterialsWorkbook(materials []dto.RawMaterialResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"ID", "Tipo", "Cantidad (kg)", "Umbral de reorden (kg)", "Estado", "Actualizado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, m := range materials {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.RawMaterialID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.QuantityKg.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.ReorderLevelKg.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.LowStockStatus)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.UpdatedAt.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir materia prima: %w", err)
	}
	return buf.Bytes(), nil
}

// PaymentsWorkbook arma el reporte de pagos a agricultores.
func PaymentsWorkbook(payments []dto.PaymentResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Pago", "Orden", "Tipo", "Kg entregados", "Precio/kg", "Monto", "Fecha"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, p := range payments {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.PaymentID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.RMOrderID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.PepperType)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.DeliveredQtyKg.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.PricePerKg.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.CreatedAt.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir pagos: %w", err)
	}
	return buf.Bytes(), nil
}
