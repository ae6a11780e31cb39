package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vantage-fin/vantage/internal/core/ports/services"
	"github.com/vantage-fin/vantage/internal/dto"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountSvc portssvc.AccountSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade) {
	h := &accountHandler{accountSvc: accountSvc}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/balances", h.getBalances)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToAccountResponse(account)))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	accounts, err := h.accountSvc.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, dto.OK(res))
}

func (h *accountHandler) getBalances(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	balances, err := h.accountSvc.GetBalances(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountBalanceResponses(balances)))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	account, err := h.accountSvc.GetAccountByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountSvc.UpdateAccount(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.accountSvc.DeleteAccount(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil))
}
