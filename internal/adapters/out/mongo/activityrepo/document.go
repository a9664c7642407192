// Package activityrepo stores the activity log in the MongoDB "activities"
// collection. Activities are written once and never updated.
package activityrepo

import (
	"time"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
)

// ActivityDocument is the stored form of an activity. Identifiers are kept as
// canonical UUID strings.
type ActivityDocument struct {
	ID            string                 `bson:"_id"`
	UserID        string                 `bson:"user"`
	Type          string                 `bson:"type"`
	Action        string                 `bson:"action"`
	Details       string                 `bson:"details,omitempty"`
	Metadata      MetadataDocument       `bson:"metadata"`
	RelatedEntity *RelatedEntityDocument `bson:"relatedEntity,omitempty"`
	IsVisible     bool                   `bson:"isVisible"`
	CreatedAt     time.Time              `bson:"createdAt"`
}

type MetadataDocument struct {
	IPAddress string `bson:"ipAddress,omitempty"`
	UserAgent string `bson:"userAgent,omitempty"`
	Device    string `bson:"device,omitempty"`
	Browser   string `bson:"browser,omitempty"`
	OS        string `bson:"os,omitempty"`
}

type RelatedEntityDocument struct {
	Type string `bson:"type"`
	ID   string `bson:"id"`
}

func fromDomain(a *activity.Activity) ActivityDocument {
	meta := a.Metadata()
	doc := ActivityDocument{
		ID:      a.ID().String(),
		UserID:  a.UserID().String(),
		Type:    string(a.Type()),
		Action:  a.Action(),
		Details: a.Details(),
		Metadata: MetadataDocument{
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Device:    meta.Device,
			Browser:   meta.Browser,
			OS:        meta.OS,
		},
		IsVisible: a.IsVisible(),
		CreatedAt: a.CreatedAt().UTC(),
	}
	if related := a.RelatedEntity(); related != nil {
		doc.RelatedEntity = &RelatedEntityDocument{Type: string(related.Type), ID: related.ID.String()}
	}
	return doc
}

func toDomain(doc ActivityDocument) (*activity.Activity, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromString(doc.UserID)
	if err != nil {
		return nil, err
	}

	var related *activity.RelatedEntity
	if doc.RelatedEntity != nil {
		relatedID, relErr := kernel.UUIDFromString(doc.RelatedEntity.ID)
		if relErr != nil {
			return nil, relErr
		}
		related = &activity.RelatedEntity{Type: activity.EntityType(doc.RelatedEntity.Type), ID: relatedID}
	}

	return activity.RestoreActivity(
		id,
		userID,
		activity.Type(doc.Type),
		doc.Action,
		doc.Details,
		activity.Metadata{
			IPAddress: doc.Metadata.IPAddress,
			UserAgent: doc.Metadata.UserAgent,
			Device:    doc.Metadata.Device,
			Browser:   doc.Metadata.Browser,
			OS:        doc.Metadata.OS,
		},
		related,
		doc.IsVisible,
		doc.CreatedAt.UTC(),
	)
}
