package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/usecase/auth"
	"github.com/budget-control/backend/internal/application/usecase/user"
	"github.com/budget-control/backend/internal/application/validator"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// LoginSuccessMessage is the body of a successful login.
const LoginSuccessMessage = "Login successful"

// UserController handles user management and login endpoints.
type UserController struct {
	createUseCase *user.CreateUserUseCase
	getUseCase    *user.GetUserUseCase
	listUseCase   *user.ListUsersUseCase
	updateUseCase *user.UpdateUserUseCase
	deleteUseCase *user.DeleteUserUseCase
	loginUseCase  *auth.LoginUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	getUseCase *user.GetUserUseCase,
	listUseCase *user.ListUsersUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
) *UserController {
	return &UserController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		loginUseCase:  loginUseCase,
	}
}

// Create handles POST /user requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var role entity.UserRole
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := entity.ParseUserRole(req.Role)
		if err != nil {
			respondError(ctx, err)
			return
		}
		role = parsed
	}

	var groupIDRaw string
	if req.GroupID != nil {
		groupIDRaw = *req.GroupID
	}
	groupID, err := validator.ParseOptionalID(groupIDRaw)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.ParsedBirthDate(),
		CPF:       req.CPF,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      role,
		GroupID:   groupID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondCreated(ctx, output.User.ID.String())
}

// GetByID handles GET /user/:id requests.
func (c *UserController) GetByID(ctx *gin.Context) {
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
		respondNotFound(ctx, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(found))
}

// List handles GET /user requests.
// Supported filters: firstName, lastName, email, cpf, dateOfBirth and role.
func (c *UserController) List(ctx *gin.Context) {
	query := newQueryParser(ctx)
	filter := adapter.UserFilter{
		FirstName: query.text("firstName"),
		LastName:  query.text("lastName"),
		Email:     query.text("email"),
		CPF:       query.text("cpf"),
		BirthDate: query.date("dateOfBirth"),
		Role:      parseQueryEnum(query, "role", entity.ParseUserRole),
	}
	if err := query.Err(); err != nil {
		respondError(ctx, err)
		return
	}

	users, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondList(ctx, dto.ToUserResponses(users), "No users found")
}

// Update handles PUT /user/:id requests. Only supplied fields change.
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	patch := user.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.GroupID != nil {
		groupID, err := validator.ParseID(*req.GroupID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		patch.GroupID = &groupID
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		ID:    id,
		Patch: patch,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /user/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
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

// Login handles POST /user/auth requests. No session or token is issued.
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if _, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, LoginSuccessMessage)
}
