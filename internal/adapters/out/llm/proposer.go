// Package llm adapts a chat-completion model to the IntentProposer port. The model only
// proposes intents; every proposal is validated and applied by the order state machine.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/pkg/errs"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const defaultTemperature = 0.1

// wireIntent is one operation as the model writes it.
type wireIntent struct {
	Op       string `json:"op"`
	Item     string `json:"item"`
	To       string `json:"to"`
	Quantity *int   `json:"quantity"`
}

type wireReply struct {
	Intents []wireIntent `json:"intents"`
	Error   string       `json:"error"`
}

type Option func(*Proposer)

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) Option {
	return func(p *Proposer) {
		p.temperature = t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Proposer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Proposer implements ports.IntentProposer on top of any langchaingo model.
type Proposer struct {
	model       llms.Model
	temperature float64
	logger      *slog.Logger
}

func NewProposer(model llms.Model, opts ...Option) (*Proposer, error) {
	if model == nil {
		return nil, errs.NewValueIsRequiredError("model")
	}

	p := &Proposer{
		model:       model,
		temperature: defaultTemperature,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "llm_proposer")
	return p, nil
}

// NewOpenAIProposer builds a Proposer on an OpenAI-compatible endpoint. An empty
// baseURL uses the provider default.
func NewOpenAIProposer(apiKey, modelName, baseURL string, opts ...Option) (*Proposer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errs.NewValueIsRequiredError("api key")
	}

	clientOpts := []openai.Option{openai.WithToken(apiKey)}
	if modelName != "" {
		clientOpts = append(clientOpts, openai.WithModel(modelName))
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(baseURL))
	}

	model, err := openai.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return NewProposer(model, opts...)
}

// Propose sends the menu, the current order, the recent turns and the utterance to the
// model and decodes its reply into a batch.
func (p *Proposer) Propose(ctx context.Context, req ports.ProposalRequest) (intent.Batch, error) {
	if err := errors.Join(req.Menu.Validate(), req.Order.Validate()); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("proposal request", err)
	}

	utterance := strings.TrimSpace(req.Utterance)
	if utterance == "" {
		return nil, intent.NewParseFailure(req.Utterance, "nothing was said")
	}

	system, err := systemPrompt(req.Menu, req.Order)
	if err != nil {
		return nil, err
	}

	messages := make([]llms.MessageContent, 0, len(req.Context)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	for _, turn := range req.Context {
		messages = append(messages, llms.TextParts(chatRole(turn.Role), turn.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, utterance))

	resp, err := p.model.GenerateContent(ctx, messages, llms.WithTemperature(p.temperature))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrProposerUnavailable, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: model returned no choices", ports.ErrProposerUnavailable)
	}

	batch, err := decode(utterance, resp.Choices[0].Content)
	if err != nil {
		p.logger.DebugContext(ctx, "model reply rejected", "reply", resp.Choices[0].Content, "error", err)
		return nil, err
	}
	return batch, nil
}

func decode(utterance, text string) (intent.Batch, error) {
	var reply wireReply
	if err := json.Unmarshal([]byte(stripFences(text)), &reply); err != nil {
		return nil, intent.NewParseFailureWithCause(utterance, "reply is not valid JSON", err)
	}

	if len(reply.Intents) == 0 {
		reason := strings.TrimSpace(reply.Error)
		if reason == "" {
			reason = "no intents in reply"
		}
		return nil, intent.NewParseFailure(utterance, reason)
	}

	batch := make(intent.Batch, 0, len(reply.Intents))
	for _, w := range reply.Intents {
		kind, err := intent.ParseKind(w.Op)
		if err != nil {
			return nil, intent.NewParseFailureWithCause(utterance, "unknown operation "+w.Op, err)
		}
		quantity, err := w.quantity(kind)
		if err != nil {
			return nil, intent.NewParseFailureWithCause(utterance, "no quantity for "+kind.String()+" "+w.Item, err)
		}
		in, err := intent.Parse(kind.String(), w.Item, w.To, quantity)
		if err != nil {
			return nil, intent.NewParseFailureWithCause(utterance, "unknown operation "+w.Op, err)
		}
		batch = append(batch, in)
	}
	return batch, nil
}

// quantity defaults a missing quantity to one unit. set_quantity has no safe default,
// since 0 would delete the line.
func (w wireIntent) quantity(kind intent.Kind) (int, error) {
	switch {
	case w.Quantity != nil:
		return *w.Quantity, nil
	case kind == intent.SetQuantity:
		return 0, errs.NewValueIsRequiredError("quantity")
	default:
		return 1, nil
	}
}

func chatRole(r session.Role) llms.ChatMessageType {
	if r == session.Assistant {
		return llms.ChatMessageTypeAI
	}
	return llms.ChatMessageTypeHuman
}
