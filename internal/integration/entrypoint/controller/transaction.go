package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/usecase/transaction"
	"github.com/budget-control/backend/internal/application/validator"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles the endpoints of one transaction kind.
type TransactionController struct {
	kind          entity.TransactionKind
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance for kind.
func NewTransactionController(
	kind entity.TransactionKind,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		kind:          kind,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Kind returns the transaction kind served by the controller.
func (c *TransactionController) Kind() entity.TransactionKind {
	return c.kind
}

// Create handles POST /transaction-<kind> requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var name entity.TransactionCategory
	if strings.TrimSpace(req.Name) != "" {
		parsed, err := c.kind.ParseCategory(req.Name)
		if err != nil {
			respondError(ctx, err)
			return
		}
		name = parsed
	}

	var userIDRaw string
	if req.UserID != nil {
		userIDRaw = *req.UserID
	}
	userID, err := validator.ParseOptionalID(userIDRaw)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Name:        name,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.ParsedDate(),
		Recurrent:   req.Recurrent,
		UserID:      userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondCreated(ctx, output.Transaction.ID.String())
}

// GetByID handles GET /transaction-<kind>/:id requests.
func (c *TransactionController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if found == nil {
		respondNotFound(ctx, c.kind.Label()+" not found")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(found))
}

// List handles GET /transaction-<kind> requests.
// Supported filters: name, description, amount, date, startDate, endDate and, for expenses, recurrent.
func (c *TransactionController) List(ctx *gin.Context) {
	query := newQueryParser(ctx)
	filter := adapter.TransactionFilter{
		Name:        parseQueryEnum(query, "name", c.kind.ParseCategory),
		Description: query.text("description"),
		Amount:      query.amount("amount"),
		Date:        query.date("date"),
		StartDate:   query.date("startDate"),
		EndDate:     query.date("endDate"),
	}
	if c.kind.RequiresRecurrence() {
		filter.Recurrent = query.flag("recurrent")
	}
	if err := query.Err(); err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{Filter: filter})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondList(ctx, dto.ToTransactionResponses(output.Transactions), "No "+strings.ToLower(c.kind.Label())+" found")
}

// Update handles PUT /transaction-<kind>/:id requests. Only supplied fields change.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	patch := transaction.TransactionPatch{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.ParsedDate(),
		Recurrent:   req.Recurrent,
	}
	if req.Name != nil {
		name, err := c.kind.ParseCategory(*req.Name)
		if err != nil {
			respondError(ctx, err)
			return
		}
		patch.Name = &name
	}
	if req.UserID != nil {
		userID, err := validator.ParseID(*req.UserID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		patch.UserID = &userID
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:    id,
		Patch: patch,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /transaction-<kind>/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
