package queries

import (
	"context"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/ports"
)

type ListActivitiesQueryHandler struct {
	repo ports.ActivityRepository
}

func NewListActivitiesQueryHandler(repo ports.ActivityRepository) ListActivitiesQueryHandler {
	return ListActivitiesQueryHandler{repo: repo}
}

func (h ListActivitiesQueryHandler) Handle(
	ctx context.Context,
	query ListActivitiesQuery,
) (ListActivitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListActivitiesQueryResponse{}, err
	}

	records, total, err := h.repo.ListForUser(ctx, ports.ActivityFilter{
		UserID: query.UserID(),
		Type:   query.Type(),
		Page:   query.Page(),
		Limit:  query.Limit(),
	})
	if err != nil {
		return ListActivitiesQueryResponse{}, err
	}

	views := make([]ActivityView, 0, len(records))
	for _, record := range records {
		views = append(views, toActivityView(record))
	}

	return ListActivitiesQueryResponse{
		Activities: views,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}

func toActivityView(a *activity.Activity) ActivityView {
	meta := a.Metadata()
	view := ActivityView{
		ID:      a.ID().String(),
		Type:    string(a.Type()),
		Action:  a.Action(),
		Details: a.Details(),
		Metadata: ActivityMetadata{
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Device:    meta.Device,
			Browser:   meta.Browser,
			OS:        meta.OS,
		},
		CreatedAt: a.CreatedAt().UTC(),
	}
	if related := a.RelatedEntity(); related != nil {
		view.RelatedEntity = &RelatedEntityView{Type: string(related.Type), ID: related.ID.String()}
	}
	return view
}
