package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// FreeDriver is one available driver in the dispatch picker.
type FreeDriver struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Vehicle string `json:"vehicle,omitempty"`
}

// ListFreeDrivers handles GET /api/v1/drivers/free - lists drivers currently
// available for dispatch.
func (s *Server) ListFreeDrivers(c echo.Context) error {
	query := queries.NewListFreeDriversQuery()

	drivers, err := s.listFreeDriversHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]FreeDriver, len(drivers))
	for i, d := range drivers {
		response[i] = FreeDriver{
			ID:      d.ID.String(),
			Name:    d.Name,
			Phone:   d.Phone,
			Vehicle: d.Vehicle,
		}
	}

	return c.JSON(http.StatusOK, response)
}
