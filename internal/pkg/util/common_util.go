package util

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomCredential gera uma credencial aleatória que nunca será usada
// para login interativo (conta do autor automático).
func RandomCredential() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
