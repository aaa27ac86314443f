package ports

import (
	"context"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

// OwnershipVerifier is the external land-ownership/document check.
type OwnershipVerifier interface {
	Verify(ctx context.Context, cred domain.OwnershipCredential) (bool, error)
}
