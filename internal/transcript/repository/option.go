package repository

// CreateTranscriptOptions holds parameters for inserting a new Transcript.
type CreateTranscriptOptions struct {
	FilePath string
	Text     string
	Summary  string
}

// CorrectTextOptions holds parameters for the one-time text correction.
type CorrectTextOptions struct {
	ID   string
	Text string
}
