package model

// Token is an opaque session credential as reported by the external auth
// provider. It is read-only for this service: the session gate inspects it
// but never mutates or persists it.
type Token struct {
	Username string `json:"username"`
	Verified bool   `json:"isVerified"`
}
