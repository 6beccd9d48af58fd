package errors

import "fmt"

// InvalidModelError indica que el modelo solicitado no existe
type InvalidModelError struct {
	Model string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("modelo '%s' no es valido", e.Model)
}

// NewInvalidModelError crea un nuevo error de modelo invalido
func NewInvalidModelError(model string) *InvalidModelError {
	return &InvalidModelError{Model: model}
}

// InvalidFeatureError indica que el feature del agente no esta registrado
type InvalidFeatureError struct {
	Feature string
}

func (e *InvalidFeatureError) Error() string {
	return fmt.Sprintf("feature '%s' no es valido", e.Feature)
}

// NewInvalidFeatureError crea un nuevo error de feature invalido
func NewInvalidFeatureError(feature string) *InvalidFeatureError {
	return &InvalidFeatureError{Feature: feature}
}

// MissingCredentialError indica que la familia de credenciales del modelo
// no tiene un secreto configurado. No se intenta ninguna llamada de red.
type MissingCredentialError struct {
	Model  string
	Family string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("no hay credencial configurada para el modelo '%s' (familia '%s')", e.Model, e.Family)
}

// NewMissingCredentialError crea un nuevo error de credencial faltante
func NewMissingCredentialError(model, family string) *MissingCredentialError {
	return &MissingCredentialError{Model: model, Family: family}
}

// UpstreamError envuelve una falla del proveedor de completions. El detalle
// se loguea del lado del servidor y nunca se devuelve al cliente.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fallo del proveedor '%s': %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("fallo del proveedor '%s'", e.Provider)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError crea un nuevo error de proveedor upstream
func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

// TeamNotFoundError indica que el equipo solicitado no esta definido
type TeamNotFoundError struct {
	TeamID string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("equipo '%s' no encontrado", e.TeamID)
}

// NewTeamNotFoundError crea un nuevo error de equipo no encontrado
func NewTeamNotFoundError(teamID string) *TeamNotFoundError {
	return &TeamNotFoundError{TeamID: teamID}
}

// ValidationError indica que el cuerpo del request no cumple el esquema
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo '%s' invalido: %s", e.Field, e.Message)
}

// NewValidationError crea un nuevo error de validacion
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
