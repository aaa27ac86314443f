package registry

import (
	"context"
	"strings"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// DocumentVerifier is the stand-in for the government land-records check.
// It accepts a credential when every field of the upload form is filled in;
// a real integration would call the records API with the same inputs.
type DocumentVerifier struct {
	logger logger.Logger
}

func NewDocumentVerifier(log logger.Logger) *DocumentVerifier {
	return &DocumentVerifier{logger: log}
}

func (v *DocumentVerifier) Verify(ctx context.Context, cred domain.OwnershipCredential) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ok := strings.TrimSpace(cred.OwnerName) != "" &&
		strings.TrimSpace(cred.RegNumber) != "" &&
		strings.TrimSpace(cred.SurveyNumber) != "" &&
		strings.TrimSpace(cred.DocumentRef) != ""

	if !ok {
		v.logger.Debug("ownership verification rejected",
			logger.String("reg_number", cred.RegNumber),
		)
	}

	return ok, nil
}
