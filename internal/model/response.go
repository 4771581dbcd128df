package model

// ErrorResponse generic error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// GenerateStoryResponse carries the generated story and its title
// illustration.
type GenerateStoryResponse struct {
	Story           string `json:"story"`
	IllustrationURL string `json:"illustrationUrl"`
	Retried         bool   `json:"retried,omitempty"` // content filter forced a safe retry
}

// TranslateStoryResponse carries a translated story.
type TranslateStoryResponse struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// GenerateVideoResponse acknowledges an accepted video job.
type GenerateVideoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	VideoID string `json:"videoId"`
}

// VideoStatusResponse is the polled job status.
type VideoStatusResponse struct {
	Status      string `json:"status"` // processing, completed, failed
	VideoID     string `json:"videoId"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}
