package settings

import (
	"fmt"

	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

// Defaults son los parámetros instalados en el primer arranque si faltan.
// Las secuencias son contadores enteros serializados; el resto son
// preferencias que pertenecen a otros colaboradores.
var Defaults = map[string]string{
	"sequence_facture": "192",
	"sequence_bl":      "30",
	"sequence_devis":   "0",
	"tva_default":      "19",
	"timbre_fiscal":    "1",
	"theme_sombre":     "true",
}

// SettingsUseCase lee y escribe parámetros de configuración persistidos.
type SettingsUseCase struct {
	paramRepo repository.ParameterRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(paramRepo repository.ParameterRepository) *SettingsUseCase {
	return &SettingsUseCase{paramRepo: paramRepo}
}

// SeedDefaults instala los valores por defecto que falten.
func (uc *SettingsUseCase) SeedDefaults() error {
	return uc.paramRepo.SeedDefaults(Defaults)
}

// Get devuelve el valor de una clave.
func (uc *SettingsUseCase) Get(key string) (*dto.ParameterDTO, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: clave vacía", domain.ErrInvalidInput)
	}
	value, err := uc.paramRepo.Get(key)
	if err != nil {
		return nil, err
	}
	return &dto.ParameterDTO{Key: key, Value: value}, nil
}

// Set modifica una clave existente.
func (uc *SettingsUseCase) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: clave vacía", domain.ErrInvalidInput)
	}
	return uc.paramRepo.Set(key, value)
}

// Add crea una clave nueva; falla con ErrDuplicate si ya existe.
func (uc *SettingsUseCase) Add(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: clave vacía", domain.ErrInvalidInput)
	}
	return uc.paramRepo.Add(key, value)
}
