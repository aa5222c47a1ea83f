package capability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// intentKeywords maps spoken phrases to the capability intent they
// express. Longer phrases are checked before shorter ones so "create
// presentation" wins over a bare "create".
var intentKeywords = []struct {
	intent  string
	phrases []string
}{
	{"presentation", []string{"create presentation", "make slides", "presentation"}},
	{"analytics", []string{"analyze data", "statistics", "analyze"}},
	{"research", []string{"research", "investigate", "study"}},
	{"device", []string{"tap", "swipe", "click", "touch"}},
	{"search", []string{"search", "find", "look for"}},
}

// Voice parses transcribed voice commands into structured intents.
// Speech-to-text itself happens upstream; this adapter only interprets
// the resulting transcript.
type Voice struct {
	logger *slog.Logger
}

// NewVoice creates a voice command adapter.
func NewVoice(logger *slog.Logger) *Voice {
	return &Voice{logger: logger.With("capability", "voice")}
}

// Execute parses the transcript given as the command. Options:
// language (default "en", informational only).
func (v *Voice) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("voice command transcript is empty")
	}

	language := stringOption(options, "language", "en")
	intent, matched := parseIntent(command)

	v.logger.Info("parsed voice command", "intent", intent, "matched", matched)

	return map[string]any{
		"type":           "voice_command",
		"transcript":     command,
		"intent":         intent,
		"matched_phrase": matched,
		"language":       language,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// parseIntent returns the first intent whose phrase appears in the
// transcript, plus the phrase that matched. Unmatched transcripts map
// to the "unknown" intent.
func parseIntent(transcript string) (string, string) {
	lowered := strings.ToLower(transcript)
	for _, entry := range intentKeywords {
		for _, phrase := range entry.phrases {
			if strings.Contains(lowered, phrase) {
				return entry.intent, phrase
			}
		}
	}
	return "unknown", ""
}
