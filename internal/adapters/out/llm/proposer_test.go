package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"drivethrough/internal/adapters/out/llm"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel answers every request with reply or err and remembers the last call.
type fakeModel struct {
	reply    string
	err      error
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (m *fakeModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	options ...llms.CallOption,
) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.options)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	bigMac, err := menu.NewItem("Big Mac", kernel.MustMoney("5.00"), "burger")
	require.NoError(t, err)
	fry, err := menu.NewItem("Large Fry", kernel.MustMoney("3.00"), "side")
	require.NoError(t, err)
	coke, err := menu.NewItem("Coke", kernel.MustMoney("2.00"), "drink")
	require.NoError(t, err)
	catalog, err := menu.NewCatalog(bigMac, fry, coke)
	require.NoError(t, err)
	return catalog
}

func newRequest(t *testing.T, utterance string, turns ...session.Turn) ports.ProposalRequest {
	t.Helper()
	return ports.ProposalRequest{
		Menu:      newCatalog(t),
		Order:     order.Empty(),
		Utterance: utterance,
		Context:   turns,
	}
}

func textOf(t *testing.T, msg llms.MessageContent) string {
	t.Helper()
	require.Len(t, msg.Parts, 1)
	part, ok := msg.Parts[0].(llms.TextContent)
	require.True(t, ok)
	return part.Text
}

func TestNewProposer(t *testing.T) {
	t.Run("should require a model", func(t *testing.T) {
		_, err := llm.NewProposer(nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require an api key for openai", func(t *testing.T) {
		_, err := llm.NewOpenAIProposer(" ", "gpt-4o-mini", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProposer_Propose(t *testing.T) {
	t.Run("should decode a batch in reply order", func(t *testing.T) {
		model := &fakeModel{reply: `{"intents":[` +
			`{"op":"add","item":"Big Mac","quantity":2},` +
			`{"op":"substitute","item":"Large Fry","to":"Coke","quantity":1},` +
			`{"op":"clear"}],"error":""}`}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		batch, err := proposer.Propose(t.Context(), newRequest(t, "two big macs, swap the fry for a coke"))
		require.NoError(t, err)

		assert.Equal(t, intent.NewBatch(
			intent.NewAdd("Big Mac", 2),
			intent.NewSubstitute("Large Fry", "Coke", 1),
			intent.NewClear(),
		), batch)
	})

	t.Run("should strip markdown fences", func(t *testing.T) {
		model := &fakeModel{reply: "```json\n{\"intents\":[{\"op\":\"remove\",\"item\":\"Coke\",\"quantity\":1}]}\n```"}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		batch, err := proposer.Propose(t.Context(), newRequest(t, "no coke"))
		require.NoError(t, err)
		assert.Equal(t, intent.NewBatch(intent.NewRemove("Coke", 1)), batch)
	})

	t.Run("should send menu, order, context and utterance at low temperature", func(t *testing.T) {
		model := &fakeModel{reply: `{"intents":[{"op":"add","item":"Coke","quantity":1}]}`}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		customer, err := session.NewTurn(session.Customer, "a big mac", at)
		require.NoError(t, err)
		assistant, err := session.NewTurn(session.Assistant, "Added 1 Big Mac.", at)
		require.NoError(t, err)

		_, err = proposer.Propose(t.Context(), newRequest(t, "and a coke", customer, assistant))
		require.NoError(t, err)

		require.Len(t, model.messages, 4)
		assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
		system := textOf(t, model.messages[0])
		assert.Contains(t, system, `"name": "Big Mac"`)
		assert.Contains(t, system, `"price": "3.00"`)

		assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
		assert.Equal(t, "a big mac", textOf(t, model.messages[1]))
		assert.Equal(t, llms.ChatMessageTypeAI, model.messages[2].Role)
		assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[3].Role)
		assert.Equal(t, "and a coke", textOf(t, model.messages[3]))

		assert.InDelta(t, 0.1, model.options.Temperature, 1e-9)
	})

	t.Run("should report non JSON reply as parse failure", func(t *testing.T) {
		proposer, err := llm.NewProposer(&fakeModel{reply: "Sure! Adding that now."})
		require.NoError(t, err)

		_, err = proposer.Propose(t.Context(), newRequest(t, "a big mac"))
		var failure *intent.ParseFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, "a big mac", failure.Utterance)
	})

	t.Run("should report model error field as parse failure", func(t *testing.T) {
		proposer, err := llm.NewProposer(&fakeModel{reply: `{"intents":[],"error":"customer said hello"}`})
		require.NoError(t, err)

		_, err = proposer.Propose(t.Context(), newRequest(t, "hello"))
		var failure *intent.ParseFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, "customer said hello", failure.Reason)
	})

	t.Run("should default missing quantity to one", func(t *testing.T) {
		model := &fakeModel{reply: `{"intents":[{"op":"add","item":"Big Mac"},{"op":"remove","item":"Coke"}]}`}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		batch, err := proposer.Propose(t.Context(), newRequest(t, "a big mac, no coke"))
		require.NoError(t, err)
		assert.Equal(t, intent.NewBatch(intent.NewAdd("Big Mac", 1), intent.NewRemove("Coke", 1)), batch)
	})

	t.Run("should report set quantity without quantity as parse failure", func(t *testing.T) {
		model := &fakeModel{reply: `{"intents":[{"op":"set_quantity","item":"Big Mac"}]}`}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		batch, err := proposer.Propose(t.Context(), newRequest(t, "make it big macs"))
		var failure *intent.ParseFailure
		require.ErrorAs(t, err, &failure)
		assert.Contains(t, failure.Reason, "Big Mac")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, batch)
	})

	t.Run("should keep explicit zero for set quantity", func(t *testing.T) {
		model := &fakeModel{reply: `{"intents":[{"op":"set_quantity","item":"Big Mac","quantity":0}]}`}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		batch, err := proposer.Propose(t.Context(), newRequest(t, "no big macs"))
		require.NoError(t, err)
		assert.Equal(t, intent.NewBatch(intent.NewSetQuantity("Big Mac", 0)), batch)
	})

	t.Run("should report unknown operation as parse failure", func(t *testing.T) {
		proposer, err := llm.NewProposer(&fakeModel{reply: `{"intents":[{"op":"supersize","item":"Large Fry"}]}`})
		require.NoError(t, err)

		_, err = proposer.Propose(t.Context(), newRequest(t, "supersize it"))
		assert.ErrorIs(t, err, intent.ErrParseFailure)
	})

	t.Run("should wrap transport errors as unavailable", func(t *testing.T) {
		boom := errors.New("connection refused")
		proposer, err := llm.NewProposer(&fakeModel{err: boom})
		require.NoError(t, err)

		_, err = proposer.Propose(t.Context(), newRequest(t, "a coke"))
		assert.ErrorIs(t, err, ports.ErrProposerUnavailable)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, intent.ErrParseFailure)
	})

	t.Run("should not call the model for blank utterance", func(t *testing.T) {
		model := &fakeModel{}
		proposer, err := llm.NewProposer(model)
		require.NoError(t, err)

		_, err = proposer.Propose(t.Context(), newRequest(t, "   "))
		assert.ErrorIs(t, err, intent.ErrParseFailure)
		assert.Nil(t, model.messages)
	})

	t.Run("should reject request without menu", func(t *testing.T) {
		proposer, err := llm.NewProposer(&fakeModel{})
		require.NoError(t, err)

		req := newRequest(t, "a coke")
		req.Menu = nil
		_, err = proposer.Propose(t.Context(), req)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
