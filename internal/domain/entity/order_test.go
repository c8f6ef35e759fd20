package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPendiente, StatusProcesando, StatusEnviado, StatusEntregado, StatusCancelado} {
		assert.True(t, ValidStatus(s), "%s es un estado conocido", s)
	}
	assert.False(t, ValidStatus("enviado_parcial"), "un estado desconocido no es válido")
	assert.False(t, ValidStatus(""), "el estado vacío no es válido")
	assert.False(t, ValidStatus("Pendiente"), "los estados distinguen mayúsculas")
}

// Tabla completa de transiciones: las permitidas y todas las demás.
func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{StatusPendiente, StatusProcesando}: true,
		{StatusPendiente, StatusCancelado}:  true,
		{StatusProcesando, StatusEnviado}:   true,
		{StatusProcesando, StatusCancelado}: true,
		{StatusEnviado, StatusEntregado}:    true,
	}

	all := []string{StatusPendiente, StatusProcesando, StatusEnviado, StatusEntregado, StatusCancelado}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]string{from, to}]
			assert.Equal(t, want, CanTransition(from, to),
				"transición %s -> %s", from, to)
		}
	}
}

func TestCanTransition_EstadosTerminales(t *testing.T) {
	all := []string{StatusPendiente, StatusProcesando, StatusEnviado, StatusEntregado, StatusCancelado}
	for _, to := range all {
		assert.False(t, CanTransition(StatusEntregado, to), "entregado es terminal")
		assert.False(t, CanTransition(StatusCancelado, to), "cancelado es terminal")
	}
}
