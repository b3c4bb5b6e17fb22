package model

import "time"

const CollectionBadgeActivity = "badge_activity"

// BadgeActivity is one audited badge request, stored in Mongo.
type BadgeActivity struct {
	ID          string    `bson:"_id" json:"id"`
	KoalmNumber string    `bson:"koalm_number" json:"koalm_number"`
	RequestedBy string    `bson:"requested_by" json:"requested_by"`
	Action      string    `bson:"action" json:"action"`
	Outcome     string    `bson:"outcome" json:"outcome"`
	States      []string  `bson:"states" json:"states"`
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
	Size        int       `bson:"size" json:"size"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
