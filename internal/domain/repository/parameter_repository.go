package repository

// ParameterRepository define el puerto del almacén clave/valor de
// configuración, incluidas las secuencias de numeración de documentos.
type ParameterRepository interface {
	Get(key string) (string, error)
	// Set modifica una clave existente; ErrNotFound si no existe.
	Set(key, value string) error
	// Add crea una clave nueva; ErrDuplicate si ya existe.
	Add(key, value string) error
	// SeedDefaults instala los valores por defecto que falten sin tocar
	// los existentes.
	SeedDefaults(defaults map[string]string) error

	// IncrementSequence incrementa atómicamente el contador almacenado en
	// key y devuelve el valor nuevo. La lectura-modificación-escritura debe
	// quedar serializada por clave frente a llamadas concurrentes.
	// ErrSequenceKeyMissing si la clave no existe.
	IncrementSequence(key string) (int64, error)
}
