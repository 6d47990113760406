package prompt

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pair holds the optional prompts loaded from a prompt JSON file. Nil fields
// mean the key was absent.
type Pair struct {
	SystemPrompt *string `json:"system_prompt"`
	UserPrompt   *string `json:"user_prompt"`
}

// LoadFile parses a prompt file with optional "system_prompt" and
// "user_prompt" string keys. An empty path or a missing file yields an empty
// pair without error; malformed JSON is an error.
func LoadFile(path string) (Pair, error) {
	if path == "" {
		return Pair{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Pair{}, nil
		}
		return Pair{}, fmt.Errorf("failed to read prompt file %s: %w", path, err)
	}

	var pair Pair
	if err := json.Unmarshal(data, &pair); err != nil {
		return Pair{}, fmt.Errorf("failed to parse prompt file %s: %w", path, err)
	}

	return pair, nil
}

// Merge applies explicit flag values on top of the pair. A non-empty flag
// replaces the file value, it is not concatenated with it.
func (p Pair) Merge(system, user string) Pair {
	merged := p
	if system != "" {
		merged.SystemPrompt = &system
	}
	if user != "" {
		merged.UserPrompt = &user
	}

	return merged
}

// System returns the resolved system prompt, or "" when absent.
func (p Pair) System() string {
	if p.SystemPrompt == nil {
		return ""
	}
	return *p.SystemPrompt
}

// User returns the resolved user prompt, or "" when absent.
func (p Pair) User() string {
	if p.UserPrompt == nil {
		return ""
	}
	return *p.UserPrompt
}
