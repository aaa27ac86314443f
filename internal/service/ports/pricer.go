package ports

import "github.com/shravanmandadapu71-sys/parkx/internal/domain"

type Pricer interface {
	Quote(plan domain.Plan) (int64, error)
}
