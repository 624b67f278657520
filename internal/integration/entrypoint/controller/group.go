package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/usecase/group"
	"github.com/budget-control/backend/internal/application/validator"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// GroupController handles group endpoints.
type GroupController struct {
	createUseCase      *group.CreateGroupUseCase
	getUseCase         *group.GetGroupUseCase
	listUseCase        *group.ListGroupsUseCase
	updateUseCase      *group.UpdateGroupUseCase
	deleteUseCase      *group.DeleteGroupUseCase
	listMembersUseCase *group.ListMembersUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createUseCase *group.CreateGroupUseCase,
	getUseCase *group.GetGroupUseCase,
	listUseCase *group.ListGroupsUseCase,
	updateUseCase *group.UpdateGroupUseCase,
	deleteUseCase *group.DeleteGroupUseCase,
	listMembersUseCase *group.ListMembersUseCase,
) *GroupController {
	return &GroupController{
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		listMembersUseCase: listMembersUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := group.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.UserID != nil {
		userID, err := validator.ParseID(*req.UserID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		input.UserID = userID
	}
	if req.ReferenceID != nil {
		referenceID, err := validator.ParseID(*req.ReferenceID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		input.ReferenceID = &referenceID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondCreated(ctx, output.Group.ID.String())
}

// GetByID handles GET /groups/:id requests.
func (c *GroupController) GetByID(ctx *gin.Context) {
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
		respondNotFound(ctx, "Group not found")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(found))
}

// List handles GET /groups requests. Supported filters: name, userId and referenceId.
func (c *GroupController) List(ctx *gin.Context) {
	query := newQueryParser(ctx)
	filter := adapter.GroupFilter{
		Name:        query.text("name"),
		UserID:      query.id("userId"),
		ReferenceID: query.id("referenceId"),
	}
	if err := query.Err(); err != nil {
		respondError(ctx, err)
		return
	}

	groups, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondList(ctx, dto.ToGroupResponses(groups), "No groups found")
}

// Update handles PUT /groups/:id requests. Only supplied fields change.
func (c *GroupController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if _, err := c.updateUseCase.Execute(ctx.Request.Context(), group.UpdateGroupInput{
		ID: id,
		Patch: group.GroupPatch{
			Name:        req.Name,
			Description: req.Description,
		},
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
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

// ListMembers handles GET /groups/:id/users requests.
// An existing group without members yields an empty array.
func (c *GroupController) ListMembers(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	members, err := c.listMembersUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponses(members))
}
