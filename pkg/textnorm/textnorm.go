// Package textnorm normaliza identificadores y nombres antes de persistirlos, para que las
// restricciones de unicidad (SKU por empresa, nombre de bodega por empresa) comparen
// cadenas equivalentes byte a byte.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name recorta espacios y lleva a forma NFC.
func Name(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// SKU igual que Name, y además elimina espacios internos repetidos.
func SKU(s string) string {
	return strings.Join(strings.Fields(Name(s)), " ")
}
