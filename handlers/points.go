package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"supermock/models"
	pointsSvc "supermock/services/points"
)

// PointsHandler exposes the credit ledger.
type PointsHandler struct {
	Service pointsSvc.PointsService
}

// BalanceHandler handles GET /points/balance.
func (h *PointsHandler) BalanceHandler(c *gin.Context) {
	userID, _ := currentUser(c)
	balance, err := h.Service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// TransactionsHandler handles GET /points/transactions?page=&limit=.
func (h *PointsHandler) TransactionsHandler(c *gin.Context) {
	userID, _ := currentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	pageResp, err := h.Service.GetTransactions(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResp)
}

// AdminAdjustHandler handles POST /points/admin/:userId.
func (h *PointsHandler) AdminAdjustHandler(c *gin.Context) {
	var req models.AdminPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Service.AdminAdjust(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
