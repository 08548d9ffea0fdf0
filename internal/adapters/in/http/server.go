// Package http exposes the order lifecycle over a JSON REST API.
// It coordinates between HTTP handlers and application use cases; all
// tenant scoping derives from the authenticated actor, never from
// client-supplied identifiers.
package http

import (
	"errors"
	"net/http"
	"time"

	"supplychain/internal/adapters/in/http/middleware"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for reserve dates. Reserve dates are
// calendar days, not instants.
const dateLayout = "2006-01-02"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server handles HTTP requests for the order lifecycle API.
type Server struct {
	// Command handlers
	addDraftHandler            commands.AddDraftCommandHandler
	adjustDraftQuantityHandler commands.AdjustDraftQuantityCommandHandler
	deleteDraftsHandler        commands.DeleteDraftsCommandHandler
	promoteDraftsHandler       commands.PromoteDraftsCommandHandler
	approveOrdersHandler       commands.ApproveOrdersCommandHandler
	changeReserveDateHandler   commands.ChangeReserveDateCommandHandler
	deleteOrdersHandler        commands.DeleteOrdersCommandHandler
	assignDriverHandler        commands.AssignDriverCommandHandler
	completeDeliveryHandler    commands.CompleteDeliveryCommandHandler

	// Query handlers
	listDraftsHandler      queries.ListDraftsQueryHandler
	searchOrdersHandler    queries.SearchOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	listFreeDriversHandler queries.ListFreeDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addDraftHandler commands.AddDraftCommandHandler,
	adjustDraftQuantityHandler commands.AdjustDraftQuantityCommandHandler,
	deleteDraftsHandler commands.DeleteDraftsCommandHandler,
	promoteDraftsHandler commands.PromoteDraftsCommandHandler,
	approveOrdersHandler commands.ApproveOrdersCommandHandler,
	changeReserveDateHandler commands.ChangeReserveDateCommandHandler,
	deleteOrdersHandler commands.DeleteOrdersCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	listDraftsHandler queries.ListDraftsQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listFreeDriversHandler queries.ListFreeDriversQueryHandler,
) *Server {
	return &Server{
		addDraftHandler:            addDraftHandler,
		adjustDraftQuantityHandler: adjustDraftQuantityHandler,
		deleteDraftsHandler:        deleteDraftsHandler,
		promoteDraftsHandler:       promoteDraftsHandler,
		approveOrdersHandler:       approveOrdersHandler,
		changeReserveDateHandler:   changeReserveDateHandler,
		deleteOrdersHandler:        deleteOrdersHandler,
		assignDriverHandler:        assignDriverHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		listDraftsHandler:          listDraftsHandler,
		searchOrdersHandler:        searchOrdersHandler,
		getOrderHandler:            getOrderHandler,
		listFreeDriversHandler:     listFreeDriversHandler,
	}
}

// RegisterRoutes wires all lifecycle endpoints onto the echo instance.
// Every /api/v1 route requires a valid token; role checks are applied per
// route group.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", middleware.Authenticate(jwtSecret))

	drafts := api.Group("/drafts", middleware.RequireRole(kernel.RoleAgency))
	drafts.POST("", s.AddDraft)
	drafts.GET("", s.ListDrafts)
	drafts.PATCH("/:id/quantity", s.AdjustDraftQuantity)
	drafts.DELETE("", s.DeleteDrafts)

	orders := api.Group("/orders")
	orders.POST("", s.PromoteDrafts, middleware.RequireRole(kernel.RoleAgency))
	orders.GET("", s.SearchOrders)
	orders.GET("/:id", s.GetOrder)
	orders.DELETE("", s.DeleteOrders, middleware.RequireRole(kernel.RoleAgency))
	orders.PATCH("/:id/reserve-date", s.ChangeReserveDate, middleware.RequireRole(kernel.RoleAgency))
	orders.POST("/approve", s.ApproveOrders, middleware.RequireRole(kernel.RoleHeadOffice))
	orders.POST("/:id/dispatch", s.AssignDriver, middleware.RequireRole(kernel.RoleLogistics))
	orders.POST("/:id/delivered", s.CompleteDelivery, middleware.RequireRole(kernel.RoleLogistics))

	drivers := api.Group("/drivers", middleware.RequireRole(kernel.RoleLogistics))
	drivers.GET("/free", s.ListFreeDrivers)
}

// respondError translates domain and application errors into HTTP statuses.
// Validation failures map to 400, missing or out-of-scope objects to 404,
// lifecycle and concurrency violations to 409. Anything unexpected is a 500
// with the detail withheld from the client.
func respondError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		code = http.StatusConflict
		message = err.Error()
	}

	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// actor resolves the authenticated caller placed into the context by the
// authentication middleware.
func actor(c echo.Context) (kernel.Actor, error) {
	return middleware.ActorFromContext(c)
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

// parseIDs converts a list of string identifiers from a request body.
func parseIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDate parses a calendar-day field such as the reserve date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
