package http

import (
	"log/slog"
	"net/http"

	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/application/usecases/queries"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	StartSession   commands.StartSessionCommandHandler
	ApplyUtterance commands.ApplyUtteranceCommandHandler
	ApplyIntents   commands.ApplyIntentsCommandHandler
	UndoLastTurn   commands.UndoLastTurnCommandHandler
	ResetSession   commands.ResetSessionCommandHandler
	Checkout       commands.CheckoutSessionCommandHandler

	// Query handlers
	GetMenu            queries.GetMenuQueryHandler
	GetOrderSummary    queries.GetOrderSummaryQueryHandler
	GetOrderHistory    queries.GetOrderHistoryQueryHandler
	GetTranscript      queries.GetTranscriptQueryHandler
	GetArchivedOrder   queries.GetArchivedOrderQueryHandler
	ListArchivedOrders queries.ListArchivedOrdersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// GetMenu handles GET /api/v1/menu - lists the menu.
//
//	@Summary	List the menu
//	@Tags		menu
//	@Produce	json
//	@Success	200	{array}		servers.MenuItem
//	@Failure	500	{object}	servers.Error
//	@Router		/menu [get]
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			Name:  item.Name,
			Price: item.Price.String(),
		}
		if item.Category != "" {
			category := item.Category
			response[i].Category = &category
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartSession handles POST /api/v1/sessions - opens an empty ordering session.
//
//	@Summary	Open an ordering session
//	@Tags		sessions
//	@Produce	json
//	@Success	201	{object}	servers.Session
//	@Failure	500	{object}	servers.Error
//	@Router		/sessions [post]
func (s *Server) StartSession(ctx echo.Context) error {
	sessionID := kernel.NewUUID()

	cmd, err := commands.NewStartSessionCommand(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if handleErr := s.handlers.StartSession.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.fail(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Session{Id: sessionID.Bytes()})
}

// GetOrder handles GET /api/v1/sessions/{sessionId}/order - the current order summary.
//
//	@Summary	Current order summary
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionId	path		string	true	"Session ID"	format(uuid)
//	@Success	200			{object}	servers.OrderSummary
//	@Failure	404			{object}	servers.Error
//	@Router		/sessions/{sessionId}/order [get]
func (s *Server) GetOrder(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary, err := s.handlers.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummary(summary.Summary, summary.Sequence))
}

// ApplyUtterance handles POST /api/v1/sessions/{sessionId}/utterances - one
// conversational turn. A turn the customer has to rephrase answers 422 together
// with the corrective reply.
//
//	@Summary	Send what the customer said
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		sessionId	path		string				true	"Session ID"	format(uuid)
//	@Param		utterance	body		servers.Utterance	true	"Customer utterance"
//	@Success	200			{object}	servers.TurnResult
//	@Failure	422			{object}	servers.TurnResult
//	@Failure	502			{object}	servers.Error
//	@Router		/sessions/{sessionId}/utterances [post]
func (s *Server) ApplyUtterance(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Utterance
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyUtteranceCommand(id, body.Text)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ApplyUtterance.Handle(ctx.Request().Context(), cmd)
	return s.turn(ctx, result, err)
}

// ApplyIntents handles POST /api/v1/sessions/{sessionId}/intents - applies a
// structured batch without going through the intent producer.
//
//	@Summary	Apply a structured intent batch
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		sessionId	path		string				true	"Session ID"	format(uuid)
//	@Param		batch		body		servers.IntentBatch	true	"Intents in order"
//	@Success	200			{object}	servers.TurnResult
//	@Failure	422			{object}	servers.TurnResult
//	@Failure	400			{object}	servers.Error
//	@Router		/sessions/{sessionId}/intents [post]
func (s *Server) ApplyIntents(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.IntentBatch
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	batch, err := toBatch(body.Intents)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewApplyIntentsCommand(id, batch)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ApplyIntents.Handle(ctx.Request().Context(), cmd)
	return s.turn(ctx, result, err)
}

// UndoLastTurn handles POST /api/v1/sessions/{sessionId}/undo.
//
//	@Summary	Revert the last accepted batch
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionId	path		string	true	"Session ID"	format(uuid)
//	@Success	200			{object}	servers.TurnResult
//	@Failure	422			{object}	servers.Error
//	@Router		/sessions/{sessionId}/undo [post]
func (s *Server) UndoLastTurn(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUndoLastTurnCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.UndoLastTurn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTurnResult(result))
}

// ResetSession handles POST /api/v1/sessions/{sessionId}/reset.
//
//	@Summary	Clear order, history and transcript
//	@Tags		sessions
//	@Param		sessionId	path	string	true	"Session ID"	format(uuid)
//	@Success	204
//	@Failure	404	{object}	servers.Error
//	@Router		/sessions/{sessionId}/reset [post]
func (s *Server) ResetSession(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewResetSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if handleErr := s.handlers.ResetSession.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.fail(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutSession handles POST /api/v1/sessions/{sessionId}/checkout - archives the
// order and closes the session.
//
//	@Summary	Confirm the order and close the session
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionId	path		string	true	"Session ID"	format(uuid)
//	@Success	200			{object}	servers.ArchivedOrder
//	@Failure	422			{object}	servers.Error
//	@Router		/sessions/{sessionId}/checkout [post]
func (s *Server) CheckoutSession(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCheckoutSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	rec, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toArchivedOrder(rec))
}

// GetHistory handles GET /api/v1/sessions/{sessionId}/history.
//
//	@Summary	Accepted batches, oldest first
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionId	path	string	true	"Session ID"	format(uuid)
//	@Success	200			{array}	servers.HistoryEntry
//	@Router		/sessions/{sessionId}/history [get]
func (s *Server) GetHistory(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.HistoryEntry{
			Sequence:   int64(e.Sequence), //nolint:gosec // sequences start at 1 and grow by one per turn
			Intents:    e.Intents,
			Items:      e.Items,
			Total:      e.Total.String(),
			RecordedAt: e.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTranscript handles GET /api/v1/sessions/{sessionId}/transcript.
//
//	@Summary	Conversation so far
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionId	path	string	true	"Session ID"	format(uuid)
//	@Param		limit		query	int		false	"Latest turns only"	minimum(0)	maximum(500)
//	@Success	200			{array}	servers.Turn
//	@Router		/sessions/{sessionId}/transcript [get]
func (s *Server) GetTranscript(ctx echo.Context, sessionId servers.SessionId, params servers.GetTranscriptParams) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetTranscriptQuery(id, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	turns, err := s.handlers.GetTranscript.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Turn, len(turns))
	for i, t := range turns {
		response[i] = servers.Turn{
			Role:    servers.TurnRole(t.Role),
			Content: t.Content,
			At:      t.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListArchivedOrders handles GET /api/v1/archive - recently ended sessions.
//
//	@Summary	Recently ended sessions, newest first
//	@Tags		archive
//	@Produce	json
//	@Param		outcome	query	string	false	"checked_out or abandoned"	Enums(checked_out, abandoned)
//	@Param		limit	query	int		false	"Page size"					minimum(0)	maximum(100)
//	@Success	200		{array}	servers.ArchivedOrderSummary
//	@Router		/archive [get]
func (s *Server) ListArchivedOrders(ctx echo.Context, params servers.ListArchivedOrdersParams) error {
	var outcome session.Outcome
	if params.Outcome != nil {
		outcome = session.Outcome(*params.Outcome)
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListArchivedOrdersQuery(outcome, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListArchivedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ArchivedOrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.ArchivedOrderSummary{
			SessionId: o.SessionID.Bytes(),
			Outcome:   servers.ArchivedOrderSummaryOutcome(o.Outcome),
			Items:     o.Items,
			Total:     o.Total.String(),
			Turns:     o.Turns,
			StartedAt: o.StartedAt,
			EndedAt:   o.EndedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetArchivedOrder handles GET /api/v1/archive/{sessionId}.
//
//	@Summary	One archived order with lines and history
//	@Tags		archive
//	@Produce	json
//	@Param		sessionId	path		string	true	"Session ID"	format(uuid)
//	@Success	200			{object}	servers.ArchivedOrder
//	@Failure	404			{object}	servers.Error
//	@Router		/archive/{sessionId} [get]
func (s *Server) GetArchivedOrder(ctx echo.Context, sessionId servers.SessionId) error {
	id, err := toSessionID(sessionId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetArchivedOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	rec, err := s.handlers.GetArchivedOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toArchivedOrder(rec))
}

// turn writes the result of a customer turn: 200 when accepted, 422 with the
// corrective reply when rejected.
func (s *Server) turn(ctx echo.Context, result commands.TurnResult, err error) error {
	if err == nil {
		return ctx.JSON(http.StatusOK, toTurnResult(result))
	}
	if commands.IsRejection(err) {
		return ctx.JSON(http.StatusUnprocessableEntity, toTurnResult(result))
	}
	return s.fail(ctx, err)
}
