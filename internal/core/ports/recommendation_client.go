package ports

import (
	"context"
	"encoding/json"

	"b2better/internal/core/domain/model/kernel"
)

// RecommendationClient queries the external recommendation service.
//
// The payload is returned exactly as the service produced it. A non-2xx
// response or a transport failure is reported as errs.UpstreamError and is
// never retried.
type RecommendationClient interface {
	Recommendations(ctx context.Context, userID kernel.UUID, limit int) (json.RawMessage, error)
}
