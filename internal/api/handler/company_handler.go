package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

// CompanyHandler handles the admin-only company lifecycle endpoints.
type CompanyHandler struct {
	service ports.AdminService
}

func NewCompanyHandler(service ports.AdminService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /api/companies.
//
// @Summary      List company accounts
// @Tags         companies
// @Produce      json
// @Success      200  {array}   companyResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyResponses(companies))
}

// Delete handles DELETE /api/companies/:id. Only the account is
// removed; the company's orders stay archived.
//
// @Summary      Delete a company account
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company user id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	company, err := h.service.DeleteCompany(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "company not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Company account %s deleted. Orders are kept in the archive", company.CompanyName),
	})
}

// ResetPassword handles POST /api/companies/:id/reset-password. The
// plaintext appears in this response and nowhere else, ever.
//
// @Summary      Reset a company password
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company user id"
// @Success      200  {object}  passwordResetResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/companies/{id}/reset-password [post]
func (h *CompanyHandler) ResetPassword(c echo.Context) error {
	reset, err := h.service.ResetPassword(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "company not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, passwordResetResponse{
		Message:     fmt.Sprintf("Password reset for company %s", reset.CompanyName),
		CompanyName: reset.CompanyName,
		Username:    reset.Username,
		NewPassword: reset.NewPassword,
	})
}
