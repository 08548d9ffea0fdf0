package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewDraftRequest is the body for POST /api/v1/drafts.
type NewDraftRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// NewDraftResponse carries the server-generated identity of the created line.
type NewDraftResponse struct {
	ID string `json:"id"`
}

// AdjustQuantityRequest is the body for PATCH /api/v1/drafts/:id/quantity.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// DeleteDraftsRequest is the body for DELETE /api/v1/drafts.
type DeleteDraftsRequest struct {
	DraftIDs []string `json:"draftIds"`
}

// DraftLine is one basket line in the list response.
type DraftLine struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	LineTotal   int64  `json:"lineTotal"`
}

// DraftBasketResponse is the agency's whole basket with its running total.
type DraftBasketResponse struct {
	Lines      []DraftLine `json:"lines"`
	GrandTotal int64       `json:"grandTotal"`
}

// AddDraft handles POST /api/v1/drafts - adds a line to the caller's basket.
func (s *Server) AddDraft(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	var req NewDraftRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product id: "+err.Error())
	}

	draftID := kernel.NewUUID()
	cmd, err := commands.NewAddDraftCommand(draftID, caller.TenantID(), productID, req.Quantity)
	if err != nil {
		return badRequest(c, "Invalid draft data: "+err.Error())
	}

	if err = s.addDraftHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewDraftResponse{ID: draftID.String()})
}

// ListDrafts handles GET /api/v1/drafts - returns the caller's basket.
func (s *Server) ListDrafts(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewListDraftsQuery(caller.TenantID())
	if err != nil {
		return respondError(c, err)
	}

	basket, err := s.listDraftsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := DraftBasketResponse{
		Lines:      make([]DraftLine, len(basket.Lines)),
		GrandTotal: basket.GrandTotal,
	}
	for i, line := range basket.Lines {
		response.Lines[i] = DraftLine{
			ID:          line.ID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// AdjustDraftQuantity handles PATCH /api/v1/drafts/:id/quantity - applies a
// signed delta to one basket line.
func (s *Server) AdjustDraftQuantity(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	draftID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid draft id: "+err.Error())
	}

	var req AdjustQuantityRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAdjustDraftQuantityCommand(caller.TenantID(), draftID, req.Delta)
	if err != nil {
		return badRequest(c, "Invalid adjustment: "+err.Error())
	}

	if err = s.adjustDraftQuantityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteDrafts handles DELETE /api/v1/drafts - removes a selection of lines
// from the caller's basket.
func (s *Server) DeleteDrafts(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return respondError(c, err)
	}

	var req DeleteDraftsRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	draftIDs, err := parseIDs(req.DraftIDs)
	if err != nil {
		return badRequest(c, "Invalid draft id: "+err.Error())
	}

	cmd, err := commands.NewDeleteDraftsCommand(caller.TenantID(), draftIDs)
	if err != nil {
		return badRequest(c, "Invalid selection: "+err.Error())
	}

	if err = s.deleteDraftsHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
