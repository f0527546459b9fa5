package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/ports"
)

// AccountHandler serves the admin user management endpoints.
type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type updateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=USER ADMIN"`
	Enabled  bool   `json:"enabled"`
}

type accountListResponse struct {
	Users []*domain.Account `json:"users"`
}

// List returns all accounts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  accountListResponse
// @Router       /admin/users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountListResponse{Users: accounts})
}

// Get returns a single account by id.
//
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.accountService.GetAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Update changes a user's username, role and enabled flag. The password
// hash cannot be modified through this endpoint.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Editable fields"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	account, err := h.accountService.UpdateAccount(c.Request().Context(), ports.UpdateAccountInput{
		ID:       c.Param("id"),
		Username: req.Username,
		Role:     domain.Role(req.Role),
		Enabled:  req.Enabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes a user. Users that still own orders cannot be deleted;
// the conflict is reported to the caller.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id   path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	deleted, err := h.accountService.DeleteAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
