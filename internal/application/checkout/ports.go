package checkout

import (
	"context"

	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

// CheckoutTxRunner ejecuta una función dentro de una transacción de BD,
// pasando repositorios atados a esa tx. Garantiza atomicidad para la
// creación de ventas: o se escriben cabecera, líneas, descuento de stock e
// incremento de secuencia, o nada.
//
// El incremento de secuencia dentro de la misma tx cumple además el
// contrato de serialización por clave: el lock de fila del UPDATE retiene a
// cualquier otra venta del mismo tipo hasta el commit, y un rollback
// revierte también el contador (numeración sin huecos).
type CheckoutTxRunner interface {
	Run(ctx context.Context, fn func(
		paramRepo repository.ParameterRepository,
		articleRepo repository.ArticleRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
