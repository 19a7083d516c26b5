// Package displayid formatea los identificadores legibles (USR0001, CUST0001, SUPP0001).
package displayid

import "fmt"

// Width ancho mínimo de la parte numérica. Valores > 9999 crecen sin truncarse.
const Width = 4

// Format devuelve prefix + n con relleno de ceros hasta Width dígitos.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, Width, n)
}
