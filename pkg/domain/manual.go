package domain

// Manual is a technical manual as stored in a library.
type Manual struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Text is the raw procedure, one instruction per line.
	Text string `json:"text" yaml:"text"`
}
