package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-alerts-api/pkg/textnorm"
)

func TestName_NFC(t *testing.T) {
	// "é" descompuesto (e + acento combinante) y compuesto deben quedar iguales.
	decomposed := "Bodega Cafe\u0301"
	composed := "Bodega Caf\u00e9"
	assert.Equal(t, composed, textnorm.Name("  "+decomposed+" "))
}

func TestSKU_ColapsaEspacios(t *testing.T) {
	assert.Equal(t, "AB 12", textnorm.SKU("  AB   12 "))
	assert.Equal(t, "", textnorm.SKU("   "))
}
