package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/hidenorly/aws-bedrock-playground/internal/llm"
)

// Claude API request format (what Bedrock expects)
type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string               `json:"role"`
	Content []claudeContentBlock `json:"content"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// streamChunk is one decoded event from the response stream, discriminated
// by Type. content_block_delta carries Delta.Text; message_delta carries the
// terminal metadata in Delta and Usage.
type streamChunk struct {
	Type  string `json:"type"`
	Delta struct {
		Type         string  `json:"type"`
		Text         string  `json:"text"`
		StopReason   string  `json:"stop_reason"`
		StopSequence *string `json:"stop_sequence"`
	} `json:"delta"`
	Usage struct {
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

const (
	anthropicVersion = "bedrock-2023-05-31"

	// Service defaults, pinned so the payload is explicit.
	requestTemperature = 1
	requestTopP        = 0.999
)

func (c *Client) InvokeModelStream(ctx context.Context, request llm.Request) (*llm.Response, error) {
	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      requestTemperature,
		TopP:             requestTopP,
		System:           request.System,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: []claudeContentBlock{{Type: "text", Text: request.Prompt}},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claude request: %w", err)
	}

	output, err := c.client.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     &c.modelID,
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model stream: %w", err)
	}

	stream := output.GetStream()
	defer stream.Close()

	var acc accumulator
	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			// Ignore event types other than payload chunks.
			continue
		}
		if err := acc.consume(chunk.Value.Bytes); err != nil {
			return nil, err
		}
	}

	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("stream error: %w", err)
	}

	return acc.response(), nil
}

// accumulator folds streamed chunks into the final answer. Text fragments
// are appended in stream order. Each message_delta overwrites the status, so
// the last one in the stream wins.
type accumulator struct {
	content strings.Builder
	status  *llm.Status
}

func (a *accumulator) consume(raw []byte) error {
	var chunk streamChunk
	if err := json.Unmarshal(raw, &chunk); err != nil {
		return fmt.Errorf("failed to parse stream chunk: %w", err)
	}

	switch chunk.Type {
	case "content_block_delta":
		if chunk.Delta.Type == "text_delta" {
			a.content.WriteString(chunk.Delta.Text)
		}
	case "message_delta":
		a.status = &llm.Status{
			StopReason:   chunk.Delta.StopReason,
			StopSequence: chunk.Delta.StopSequence,
			OutputTokens: chunk.Usage.OutputTokens,
		}
	}
	// Remaining chunk types (message_start, content_block_start, ping, ...)
	// carry neither answer text nor terminal metadata.

	return nil
}

func (a *accumulator) response() *llm.Response {
	return &llm.Response{
		Content: a.content.String(),
		Status:  a.status,
	}
}
