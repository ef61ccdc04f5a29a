package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/param"
	"github.com/rs/zerolog/log"

	"place-recommender/internal/services/geo"
)

// OpenAIClient implements Client on top of the OpenAI chat completions API.
type OpenAIClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	requestOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &OpenAIClient{
		client:  openai.NewClient(requestOpts...),
		model:   model,
		timeout: timeout,
	}, nil
}

// ExtractIntent sends the extraction prompt and strictly decodes the reply.
// A reply that does not decode as the expected JSON object yields ErrBadReply.
func (c *OpenAIClient) ExtractIntent(ctx context.Context, query string) (*Intent, error) {
	reply, err := c.complete(ctx, extractSystemPrompt, buildExtractPrompt(query))
	if err != nil {
		return nil, fmt.Errorf("llm: extracting intent: %w", err)
	}

	intent, err := parseIntentReply(reply)
	if err != nil {
		log.Warn().Str("query", query).Err(err).Msg("Model reply failed intent decode")
		return nil, err
	}

	log.Debug().
		Str("query", query).
		Str("location", intent.Location).
		Str("place_type", intent.PlaceType).
		Msg("Extracted intent")
	return intent, nil
}

// Summarize sends the summary prompt and returns the model text verbatim.
func (c *OpenAIClient) Summarize(ctx context.Context, query string, places []geo.Place) (string, error) {
	reply, err := c.complete(ctx, summarizeSystemPrompt, buildSummarizePrompt(query, places))
	if err != nil {
		return "", fmt.Errorf("llm: summarizing places: %w", err)
	}
	return reply, nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: param.NewOpt(0.0),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// parseIntentReply decodes the model reply into an Intent. The decode is
// strict: the reply must be a single JSON object carrying only the expected
// fields. Blank place types fall back to DefaultPlaceType.
func parseIntentReply(reply string) (*Intent, error) {
	var intent Intent
	dec := json.NewDecoder(strings.NewReader(sanitizeReply(reply)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}

	intent.Location = strings.TrimSpace(intent.Location)
	intent.PlaceType = strings.TrimSpace(intent.PlaceType)
	if intent.PlaceType == "" {
		intent.PlaceType = DefaultPlaceType
	}
	return &intent, nil
}
