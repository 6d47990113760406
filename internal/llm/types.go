package llm

// Request is a single-turn prompt sent to the model.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Status is the terminal metadata of a streamed response. StopSequence is
// a pointer because the service reports null when generation ended without
// hitting a stop sequence.
type Status struct {
	StopReason   string
	StopSequence *string
	OutputTokens int
}

// Response is the fully accumulated model answer. Status is nil when the
// stream carried no message_delta chunk.
type Response struct {
	Content string
	Status  *Status
}
