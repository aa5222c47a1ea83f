package capability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/dmaher/maestro/internal/config"
)

// researchModel is the Gemini model used for research synthesis.
const researchModel = "gemini-2.0-flash"

// Depth presets control how much material the synthesis asks for.
var depthSections = map[string]int{
	"shallow": 3,
	"medium":  5,
	"deep":    8,
}

// Research conducts topic research. With a configured Gemini API key it
// synthesizes findings through the genai client; without one it returns
// a structured outline the caller can fill in.
type Research struct {
	client *genai.Client
	logger *slog.Logger
}

// NewResearch creates a research adapter. The genai client is only
// constructed when an API key is configured; otherwise the adapter
// operates in offline outline mode.
func NewResearch(ctx context.Context, cfg config.ResearchConfig, logger *slog.Logger) (*Research, error) {
	r := &Research{logger: logger.With("capability", "research")}

	if cfg.GeminiAPIKey == "" {
		r.logger.Info("no gemini API key configured, research runs in outline mode")
		return r, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	r.client = client

	return r, nil
}

// Execute researches the topic given as the command. Options: depth
// (shallow|medium|deep, default medium), sources (list of source hints
// included in the prompt).
func (r *Research) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	depth := stringOption(options, "depth", "medium")
	sections, ok := depthSections[depth]
	if !ok {
		return nil, fmt.Errorf("unknown research depth %q", depth)
	}
	sources := stringSliceOption(options, "sources")

	r.logger.Info("conducting research", "topic", command, "depth", depth)

	var findings string
	var mode string
	if r.client != nil {
		text, err := r.synthesize(ctx, command, depth, sections, sources)
		if err != nil {
			return nil, err
		}
		findings = text
		mode = "synthesized"
	} else {
		findings = outline(command, sections)
		mode = "outline"
	}

	return map[string]any{
		"type":      "research",
		"topic":     command,
		"depth":     depth,
		"mode":      mode,
		"research":  findings,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// synthesize asks the model for a structured research summary.
func (r *Research) synthesize(ctx context.Context, topic, depth string, sections int, sources []string) (string, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Research the topic %q at %s depth.\n", topic, depth)
	fmt.Fprintf(&prompt, "Organize the findings into %d sections with headings.\n", sections)
	if len(sources) > 0 {
		fmt.Fprintf(&prompt, "Prefer these sources where relevant: %s.\n", strings.Join(sources, ", "))
	}

	resp, err := r.client.Models.GenerateContent(ctx, researchModel, genai.Text(prompt.String()), nil)
	if err != nil {
		return "", fmt.Errorf("research synthesis failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("research synthesis returned no content")
	}
	return text, nil
}

// outline produces the offline fallback: numbered section headings the
// caller can research manually.
func outline(topic string, sections int) string {
	headings := []string{
		"Overview",
		"Background",
		"Current State",
		"Key Findings",
		"Analysis",
		"Applications",
		"Open Problems",
		"Conclusions",
	}
	if sections > len(headings) {
		sections = len(headings)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Research outline: %s\n", topic)
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&b, "%d. %s\n", i+1, headings[i])
	}
	return b.String()
}
