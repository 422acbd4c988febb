package firebase

import (
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// AuthError carries the provider error code so callers can surface the
// user-facing Portuguese message for it.
type AuthError struct {
	Code string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("firebase auth: %s", e.Code)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Message returns the pt-BR user-facing translation of the error code.
func (e *AuthError) Message() string {
	if msg, ok := authErrorMessages[e.Code]; ok {
		return msg
	}
	return fmt.Sprintf("Erro inesperado (%s). Verifique a configuração do Firebase.", e.Code)
}

var authErrorMessages = map[string]string{
	"EMAIL_EXISTS":                "Este email já está em uso.",
	"EMAIL_NOT_FOUND":             "Usuário não encontrado.",
	"INVALID_PASSWORD":            "Senha incorreta.",
	"INVALID_LOGIN_CREDENTIALS":   "Email ou senha incorretos.",
	"INVALID_EMAIL":               "Email inválido.",
	"USER_DISABLED":               "Esta conta foi desativada.",
	"WEAK_PASSWORD":               "A senha deve ter pelo menos 6 caracteres.",
	"OPERATION_NOT_ALLOWED":       "O método de autenticação por email/senha não está habilitado.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Muitas tentativas. Tente novamente mais tarde.",
	"NETWORK_REQUEST_FAILED":      "Erro de conexão. Verifique sua internet.",
	"CONFIGURATION_NOT_FOUND":     "Firebase não configurado. Verifique as variáveis de ambiente.",
	"API_KEY_NOT_VALID":           "Chave da API do Firebase inválida.",
}

func translateAuthError(err error) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return &AuthError{Code: "EMAIL_EXISTS", Err: err}
	default:
		return err
	}
}
