package usecase

import (
	"context"

	"github.com/boutique-bouquet/go-backend/internal/domain"
)

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// TokenManager — способность выпускать и проверять токены администратора.
// Внедряется в цепочку обработки запросов вместо неявной middleware-логики.
type TokenManager interface {
	Issue(admin *domain.Admin) (string, error)
	Verify(token string) (*Identity, error)
}
