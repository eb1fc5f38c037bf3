package onboarding

import (
	"crypto/rand"
	"fmt"
)

// Domínio fixo dos emails de login gerados na aprovação.
const credentialsDomain = "@ecofood.local"

// Alfabeto dos tokens gerados (minúsculas + dígitos, sem ambiguidade de caixa).
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	emailTokenLen = 6
	passwordLen   = 8
)

// generateLoginEmail gera um email opaco <token>@ecofood.local.
// A unicidade final é garantida pelo índice único em credentials_email.
func generateLoginEmail() (string, error) {
	token, err := randomToken(emailTokenLen)
	if err != nil {
		return "", err
	}
	return token + credentialsDomain, nil
}

// generatePassword gera o password alfanumérico divulgado uma única vez.
func generatePassword() (string, error) {
	return randomToken(passwordLen)
}

func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gerar token: %w", err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}
