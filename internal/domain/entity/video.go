package entity

import "time"

// VideoMetadata describes an exercise video stored in blob storage.
type VideoMetadata struct {
	VideoID      string
	Name         string
	Path         string // Blob path inside the video container.
	Filename     string
	Activity     string
	Type         string
	BodyPart     string
	ThumbnailURL string
	Extra        map[string]string // Columns without a dedicated field.
	CreatedAt    time.Time
}

// VideoFilter narrows video metadata queries. Empty fields match everything.
type VideoFilter struct {
	Activity string
	Type     string
	BodyPart string
}
