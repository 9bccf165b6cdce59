package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// MissingCredentialError indica que falta una credencial requerida para llamar a una API externa
type MissingCredentialError struct {
	Credential string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("credencial '%s' no configurada", e.Credential)
}

// NewMissingCredentialError crea un nuevo error de credencial faltante
func NewMissingCredentialError(credential string) *MissingCredentialError {
	return &MissingCredentialError{Credential: credential}
}
