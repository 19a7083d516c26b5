package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// ID (jti) identifica el token para poder revocarlo en logout.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`    // id nativo
	DisplayID string `json:"display_id"` // USR0001
	Role      string `json:"role"`
}

// Issuer firma y valida tokens HS256.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer construye el emisor. ttl es también la duración de la sesión.
func NewIssuer(secret, issuer string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: ttl debe ser positivo")
	}
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Generate emite un token para userID (id nativo) y devuelve también su expiración.
func (i *Issuer) Generate(userID, displayID, role string) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:    userID,
		DisplayID: displayID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar: %w", err)
	}
	return signed, exp, nil
}

// Parse valida firma y expiración y devuelve los claims.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.ID == "" || claims.UserID == "" {
		return nil, fmt.Errorf("claims incompletos")
	}
	return claims, nil
}
