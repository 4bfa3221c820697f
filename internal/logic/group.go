package logic

import (
	"errors"
	"net/http"
	"strconv"

	"circles/internal/common/errcode"
	"circles/internal/common/middleware/mhttp"
	"circles/internal/common/response"
	"circles/internal/model"
	"circles/internal/server"
	"circles/internal/types"
	"circles/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GroupApi struct {
	s *server.Server
}

func NewGroupApi(s *server.Server) *GroupApi {
	return &GroupApi{s}
}

func (api *GroupApi) RegisterRouter(engine *gin.RouterGroup) {
	groups := engine.Group("/groups")
	{
		groups.GET("", api.ListGroups)
		groups.GET("/:id", api.GetGroup)
		groups.POST("", mhttp.Auth(api.s.Sessions), api.CreateGroup)
		// Identity, not Auth: existence is answered before authentication
		// on id-scoped routes.
		groups.PUT("/:id", mhttp.Identity(api.s.Sessions), api.UpdateGroup)
		groups.DELETE("/:id", mhttp.Identity(api.s.Sessions), api.DeleteGroup)
	}
}

// parseGroupID treats non-numeric input as not-found, keeping the handler
// total.
func parseGroupID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errcode.ErrGroupNotFound
	}
	return id, nil
}

func loadGroup(c *gin.Context, s *server.Server, id int64) (*model.Group, error) {
	group, err := s.Groups.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (api *GroupApi) ListGroups(c *gin.Context) {
	var (
		resp []*model.Group
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusOK, resp)
		}
	}()
	resp, err = api.s.Groups.List(c.Request.Context())
}

func (api *GroupApi) GetGroup(c *gin.Context) {
	var (
		resp *model.Group
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusOK, resp)
		}
	}()
	id, err := parseGroupID(c)
	if err != nil {
		return
	}
	resp, err = loadGroup(c, api.s, id)
}

func (api *GroupApi) CreateGroup(c *gin.Context) {
	var (
		resp *model.Group
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusCreated, resp)
		}
	}()
	var req types.CreateGroupReq
	if berr := c.ShouldBindJSON(&req); berr != nil {
		err = validate.BindError(berr)
		return
	}
	if err = validate.Struct(req); err != nil {
		return
	}
	userID := c.GetInt64("user_id")
	group := &model.Group{
		Name:        req.Name,
		Description: req.Description,
		Leader:      req.Leader,
		Schedule:    req.Schedule,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
		CreatorID:   &userID,
	}
	if _, err = api.s.Groups.Create(c.Request.Context(), group); err != nil {
		return
	}
	resp = group
}

func (api *GroupApi) UpdateGroup(c *gin.Context) {
	var (
		resp *model.Group
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusOK, resp)
		}
	}()
	id, err := parseGroupID(c)
	if err != nil {
		return
	}
	group, err := loadGroup(c, api.s, id)
	if err != nil {
		return
	}
	userID, ok := mhttp.UserID(c)
	if !ok {
		err = errcode.ErrUnauthorized
		return
	}
	if group.CreatorID == nil || *group.CreatorID != userID {
		err = errcode.ErrOnlyCreatorEdit
		return
	}
	var req types.UpdateGroupReq
	if berr := c.ShouldBindJSON(&req); berr != nil {
		err = validate.BindError(berr)
		return
	}
	if err = validate.Struct(req); err != nil {
		return
	}
	resp, err = api.s.Groups.Update(c.Request.Context(), id, req.Values())
}

func (api *GroupApi) DeleteGroup(c *gin.Context) {
	var err error
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.NoContent(c)
		}
	}()
	id, err := parseGroupID(c)
	if err != nil {
		return
	}
	group, err := loadGroup(c, api.s, id)
	if err != nil {
		return
	}
	userID, ok := mhttp.UserID(c)
	if !ok {
		err = errcode.ErrUnauthorized
		return
	}
	if group.CreatorID == nil || *group.CreatorID != userID {
		err = errcode.ErrOnlyCreatorDelete
		return
	}
	err = api.s.Groups.Delete(c.Request.Context(), id)
}
