package entity

// Parameter es un par clave/valor de configuración persistida.
// Las secuencias de numeración de documentos viven aquí como valores
// enteros serializados (sequence_facture, sequence_bl, sequence_devis).
type Parameter struct {
	Key   string
	Value string
}
