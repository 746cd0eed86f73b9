package models

// UploadedVideo is the request-scoped view of an upload once it has been
// written to temporary storage.
type UploadedVideo struct {
	RequestID string
	Filename  string
	MIMEType  string
	Size      int64
	Path      string
}

type MediaInfo struct {
	Duration    float64
	VideoStream string
	HasAudio    bool
}
