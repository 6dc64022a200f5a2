package domain

// State is the UI-observable state of the download widget.
// DownloadURL is non-nil only when the last settled submission succeeded,
// and IsLoading is true only while a submission is waiting on the downloader.
type State struct {
	URL         string   `json:"url"`
	Platform    Platform `json:"platform"`
	IsLoading   bool     `json:"isLoading"`
	Message     string   `json:"message"`
	DownloadURL *string  `json:"downloadUrl"`
}

// NewState returns the idle state for an empty input
func NewState() State {
	return State{Platform: PlatformUnknown}
}

// Clone returns a copy that shares no pointers with s
func (s State) Clone() State {
	if s.DownloadURL != nil {
		link := *s.DownloadURL
		s.DownloadURL = &link
	}
	return s
}

// HasLink reports whether a download link is available
func (s State) HasLink() bool {
	return s.DownloadURL != nil
}
