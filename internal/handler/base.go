package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sergioortiz17/devtools-backend/internal/middleware"
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// ResponseHandler writes a successful result and names the operation for logs.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	txn.AddAttribute("response.type", "json")
	txn.AddAttribute("response.status", h.status)
}

// recordPhase tags the transaction with the outcome and duration of one
// pipeline phase ("validation", "handler").
func recordPhase(txn *newrelic.Transaction, phase string, err error, d time.Duration) {
	if txn == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failed"
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}
	txn.AddAttribute(phase+".status", status)
	txn.AddAttribute(phase+".duration_ms", d.Milliseconds())
}

// handleRequest binds and validates req, runs handler and writes its result.
// Each phase is timed, logged and recorded on the New Relic transaction.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	err := validation.BindAndValidate(c, req)
	validationDuration := time.Since(start)
	recordPhase(txn, "validation", err, validationDuration)
	if err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")
		return err
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)
	recordPhase(txn, "handler", err, handlerDuration)

	if txn != nil {
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler returned an error")
		return err
	}

	if txn != nil {
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Msg("request handled")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed endpoint, which receives a bound and validated request,
// into an echo.HandlerFunc. A fresh request value is allocated for every call.
//
//	router.POST("/dictionary/add", Handle(h.Handler, h.AddWord, http.StatusCreated))
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](
	h Handler,
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req PReq = new(Req)
		return handleRequest(c, req, func(c echo.Context, req PReq) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
