package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnknownDocumentType = errors.New("tipo de documento desconocido")
	ErrSequenceKeyMissing  = errors.New("clave de secuencia ausente en parámetros")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
)
