package model

import "time"

// VideoMetadataDocument mirrors a document in the 'videoMetadata' collection.
type VideoMetadataDocument struct {
	VideoID      string            `firestore:"videoId"`
	Name         string            `firestore:"name"`
	Path         string            `firestore:"path"`
	Filename     string            `firestore:"filename"`
	Activity     string            `firestore:"activity,omitempty"`
	Type         string            `firestore:"type,omitempty"`
	BodyPart     string            `firestore:"bodyPart,omitempty"`
	ThumbnailURL string            `firestore:"thumbnailUrl,omitempty"`
	Extra        map[string]string `firestore:"extra,omitempty"`
	CreatedAt    time.Time         `firestore:"createdAt"`
}
