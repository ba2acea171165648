package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de sessão do dashboard. A API tem uma única
// credencial, então não há identidade de usuário aqui.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
