package sequence_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylonpepper/pepperworks-api/internal/application/sequence"
)

// fakeSeq devuelve valores fijos por clave, o error si falla el contador.
type fakeSeq struct {
	next map[string]int64
	err  error
}

func (f *fakeSeq) Next(key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.next[key], nil
}

// Los formatos rellenan con ceros al ancho fijo de cada entidad.
func TestFormatos_AnchoFijo(t *testing.T) {
	assert.Equal(t, "PID-001", sequence.FormatProductID(1))
	assert.Equal(t, "PID-042", sequence.FormatProductID(42))
	assert.Equal(t, "RM-003", sequence.FormatRawMaterialID(3))
	assert.Equal(t, "RMO-0001", sequence.FormatOrderID(1))
	assert.Equal(t, "RMO-0315", sequence.FormatOrderID(315))
	assert.Equal(t, "EMP007", sequence.FormatEmployeeID(7))
	assert.Equal(t, "FP-0009", sequence.FormatPaymentID(9))
}

// Pasado el ancho del padding el número sigue creciendo sin truncarse.
func TestFormatos_DesbordanElPadding(t *testing.T) {
	assert.Equal(t, "PID-1000", sequence.FormatProductID(1000))
	assert.Equal(t, "RMO-12345", sequence.FormatOrderID(12345))
	assert.Equal(t, "EMP1234", sequence.FormatEmployeeID(1234))
}

func TestNextOrderID_UsaElContador(t *testing.T) {
	seq := &fakeSeq{next: map[string]int64{"rmOrderId": 17}}
	id, err := sequence.NextOrderID(seq)
	require.NoError(t, err)
	assert.Equal(t, "RMO-0017", id)
}

// Si el contador no está disponible, la generación falla completa (la
// creación que dependía del ID debe fallar, no reintentarse).
func TestNext_FallaSiElContadorFalla(t *testing.T) {
	seq := &fakeSeq{err: errors.New("db caída")}
	_, err := sequence.NextProductID(seq)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db caída")
}
