package http

import (
	"net/http"
	"strconv"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PromoteDraftsRequest is the body for POST /api/v1/orders.
type PromoteDraftsRequest struct {
	DraftIDs    []string `json:"draftIds"`
	ReserveDate string   `json:"reserveDate"`
}

// NewOrderResponse carries the server-generated identity of the created order.
type NewOrderResponse struct {
	ID string `json:"id"`
}

// ApproveOrdersRequest is the body for POST /api/v1/orders/approve.
type ApproveOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// ChangeReserveDateRequest is the body for PATCH /api/v1/orders/:id/reserve-date.
type ChangeReserveDateRequest struct {
	ReserveDate string `json:"reserveDate"`
}

// DeleteOrdersRequest is the body for DELETE /api/v1/orders.
type DeleteOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// AssignDriverRequest is the body for POST /api/v1/orders/:id/dispatch.
type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// OrderSummary is one order row in list views.
type OrderSummary struct {
	ID             string `json:"id"`
	AgencyID       string `json:"agencyId"`
	AgencyName     string `json:"agencyName"`
	OrderedAt      string `json:"orderedAt"`
	ReserveDate    string `json:"reserveDate"`
	Status         string `json:"status"`
	ProductSummary string `json:"productSummary"`
	TotalQuantity  int    `json:"totalQuantity"`
	TotalAmount    int64  `json:"totalAmount"`
	DriverName     string `json:"driverName,omitempty"`
}

// OrderItem is one snapshotted line of an order detail view.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	LineTotal   int64  `json:"lineTotal"`
}

// Assignment is the driver snapshot taken at dispatch.
type Assignment struct {
	DriverID    string `json:"driverId"`
	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone,omitempty"`
	Vehicle     string `json:"vehicle,omitempty"`
}

// OrderDetail is the full order view returned by GET /api/v1/orders/:id.
type OrderDetail struct {
	ID             string      `json:"id"`
	AgencyID       string      `json:"agencyId"`
	AgencyName     string      `json:"agencyName"`
	OrderedAt      string      `json:"orderedAt"`
	ReserveDate    string      `json:"reserveDate"`
	Status         string      `json:"status"`
	ProductSummary string      `json:"productSummary"`
	TotalQuantity  int         `json:"totalQuantity"`
	TotalAmount    int64       `json:"totalAmount"`
	Items          []OrderItem `json:"items"`
	Assignment     *Assignment `json:"assignment,omitempty"`
}

// PromoteDrafts handles POST /api/v1/orders - turns a basket selection into a
// confirmed order awaiting head-office approval.
func (s *Server) PromoteDrafts(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	var req PromoteDraftsRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	draftIDs, err := parseIDs(req.DraftIDs)
	if err != nil {
		return badRequest(c, "Invalid draft id: "+err.Error())
	}

	reserveDate, err := parseDate(req.ReserveDate)
	if err != nil {
		return badRequest(c, "Invalid reserve date: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPromoteDraftsCommand(orderID, caller.TenantID(), draftIDs, reserveDate)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	if err = s.promoteDraftsHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewOrderResponse{ID: orderID.String()})
}

// SearchOrders handles GET /api/v1/orders - searches orders with optional
// filters and sorting. Agency callers only ever see their own orders.
func (s *Server) SearchOrders(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	filter, err := searchFilterFromRequest(c)
	if err != nil {
		return badRequest(c, "Invalid search filter: "+err.Error())
	}
	if caller.IsAgency() {
		agencyID := caller.TenantID()
		filter.AgencyID = &agencyID
	}

	query, err := queries.NewSearchOrdersQuery(filter)
	if err != nil {
		return badRequest(c, "Invalid search filter: "+err.Error())
	}

	results, err := s.searchOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]OrderSummary, len(results))
	for i, row := range results {
		response[i] = OrderSummary{
			ID:             row.ID.String(),
			AgencyID:       row.AgencyID.String(),
			AgencyName:     row.AgencyName,
			OrderedAt:      row.OrderedAt.Format(time.RFC3339),
			ReserveDate:    row.ReserveDate.Format(dateLayout),
			Status:         row.Status.String(),
			ProductSummary: row.ProductSummary,
			TotalQuantity:  row.TotalQuantity,
			TotalAmount:    row.TotalAmount,
			DriverName:     row.DriverName,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - returns the full order detail.
// For agency callers an order of another agency reads as not found.
func (s *Server) GetOrder(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var scope *kernel.UUID
	if caller.IsAgency() {
		agencyID := caller.TenantID()
		scope = &agencyID
	}

	query, err := queries.NewGetOrderQuery(orderID, scope)
	if err != nil {
		return respondError(c, err)
	}

	detail, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := OrderDetail{
		ID:             detail.ID.String(),
		AgencyID:       detail.AgencyID.String(),
		AgencyName:     detail.AgencyName,
		OrderedAt:      detail.OrderedAt.Format(time.RFC3339),
		ReserveDate:    detail.ReserveDate.Format(dateLayout),
		Status:         detail.Status.String(),
		ProductSummary: detail.ProductSummary,
		TotalQuantity:  detail.TotalQuantity,
		TotalAmount:    detail.TotalAmount,
		Items:          make([]OrderItem, len(detail.Items)),
	}
	for i, item := range detail.Items {
		response.Items[i] = OrderItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		}
	}
	if detail.Assignment != nil {
		response.Assignment = &Assignment{
			DriverID:    detail.Assignment.DriverID.String(),
			DriverName:  detail.Assignment.DriverName,
			DriverPhone: detail.Assignment.DriverPhone,
			Vehicle:     detail.Assignment.Vehicle,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ApproveOrders handles POST /api/v1/orders/approve - approves a batch of
// pending orders. The batch is all-or-nothing.
func (s *Server) ApproveOrders(c echo.Context) error {
	var req ApproveOrdersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderIDs, err := parseIDs(req.OrderIDs)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewApproveOrdersCommand(orderIDs)
	if err != nil {
		return badRequest(c, "Invalid selection: "+err.Error())
	}

	if err = s.approveOrdersHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeReserveDate handles PATCH /api/v1/orders/:id/reserve-date - moves the
// reserve date of one of the caller's not-yet-dispatched orders.
func (s *Server) ChangeReserveDate(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var req ChangeReserveDateRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	reserveDate, err := parseDate(req.ReserveDate)
	if err != nil {
		return badRequest(c, "Invalid reserve date: "+err.Error())
	}

	cmd, err := commands.NewChangeReserveDateCommand(caller.TenantID(), orderID, reserveDate)
	if err != nil {
		return badRequest(c, "Invalid reserve date: "+err.Error())
	}

	if err = s.changeReserveDateHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOrders handles DELETE /api/v1/orders - deletes a batch of the
// caller's not-yet-dispatched orders.
func (s *Server) DeleteOrders(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	var req DeleteOrdersRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderIDs, err := parseIDs(req.OrderIDs)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrdersCommand(caller.TenantID(), orderIDs)
	if err != nil {
		return badRequest(c, "Invalid selection: "+err.Error())
	}

	if err = s.deleteOrdersHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/dispatch - books a free driver
// for an approved order and moves it into transit.
func (s *Server) AssignDriver(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var req AssignDriverRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(c, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(c, "Invalid dispatch data: "+err.Error())
	}

	if err = s.assignDriverHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/delivered - marks an
// in-transit order as delivered and frees its driver.
func (s *Server) CompleteDelivery(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	if err = s.completeDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// searchFilterFromRequest assembles the search filter from query parameters.
// Absent parameters leave the corresponding constraint unset.
func searchFilterFromRequest(c echo.Context) (queries.SearchOrdersFilter, error) {
	filter := queries.SearchOrdersFilter{
		SearchText: c.QueryParam("q"),
		SortBy:     c.QueryParam("sortBy"),
	}

	if raw := c.QueryParam("sortDesc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			return queries.SearchOrdersFilter{}, err
		}
		filter.SortDesc = desc
	}

	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return queries.SearchOrdersFilter{}, err
		}
		filter.Status = &status
	}

	var err error
	if filter.OrderedFrom, err = dateParam(c, "orderedFrom"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}
	if filter.OrderedTo, err = dateParam(c, "orderedTo"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}
	if filter.ReserveFrom, err = dateParam(c, "reserveFrom"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}
	if filter.ReserveTo, err = dateParam(c, "reserveTo"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}

	if filter.AmountMin, err = int64Param(c, "amountMin"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}
	if filter.AmountMax, err = int64Param(c, "amountMax"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}
	if filter.QuantityMin, err = intParam(c, "quantityMin"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}
	if filter.QuantityMax, err = intParam(c, "quantityMax"); err != nil {
		return queries.SearchOrdersFilter{}, err
	}

	return filter, nil
}

func dateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func int64Param(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func intParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
