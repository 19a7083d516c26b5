package entity

import "github.com/google/uuid"

// KeyKind distingue los dos espacios de claves de un recurso.
type KeyKind int

const (
	// KeyNative id asignado por el store (UUID canónico).
	KeyNative KeyKind = iota + 1
	// KeyDisplay id legible secuencial (USR0001, CUST0001...).
	KeyDisplay
)

// Key identifica un registro por id nativo o por id legible. Los formatos son disjuntos.
type Key struct {
	Kind  KeyKind
	Value string
}

// ParseKey clasifica una clave recibida en la URL.
// Un UUID canónico de 36 caracteres es nativo; cualquier otra cosa es id legible.
func ParseKey(raw string) Key {
	if len(raw) == 36 {
		if id, err := uuid.Parse(raw); err == nil {
			return Key{Kind: KeyNative, Value: id.String()}
		}
	}
	return Key{Kind: KeyDisplay, Value: raw}
}

// NativeKey clave por id nativo.
func NativeKey(id string) Key {
	return Key{Kind: KeyNative, Value: id}
}

// DisplayKey clave por id legible.
func DisplayKey(id string) Key {
	return Key{Kind: KeyDisplay, Value: id}
}

func (k Key) String() string {
	return k.Value
}
