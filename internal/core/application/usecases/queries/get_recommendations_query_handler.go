package queries

import (
	"context"
	"encoding/json"

	"b2better/internal/core/ports"
)

// GetRecommendationsQueryHandler relays the service payload unchanged.
type GetRecommendationsQueryHandler struct {
	client ports.RecommendationClient
}

func NewGetRecommendationsQueryHandler(client ports.RecommendationClient) GetRecommendationsQueryHandler {
	return GetRecommendationsQueryHandler{client: client}
}

func (h GetRecommendationsQueryHandler) Handle(ctx context.Context, query GetRecommendationsQuery) (json.RawMessage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.client.Recommendations(ctx, query.UserID(), query.Limit())
}
