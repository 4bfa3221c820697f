package logic

import (
	"net/http"

	"circles/internal/common/errcode"
	"circles/internal/common/middleware/mhttp"
	"circles/internal/common/response"
	"circles/internal/model"
	"circles/internal/server"
	"circles/internal/types"
	"circles/internal/validate"

	"github.com/gin-gonic/gin"
)

type JoinRequestApi struct {
	s *server.Server
}

func NewJoinRequestApi(s *server.Server) *JoinRequestApi {
	return &JoinRequestApi{s}
}

func (api *JoinRequestApi) RegisterRouter(engine *gin.RouterGroup) {
	requests := engine.Group("/groups/:id/join-requests", mhttp.Identity(api.s.Sessions))
	{
		requests.POST("", api.CreateJoinRequest)
		requests.GET("", api.ListJoinRequests)
	}
}

// Any authenticated user may ask to join any existing group; there is no
// ownership gate here, only the existence check.
func (api *JoinRequestApi) CreateJoinRequest(c *gin.Context) {
	var (
		resp *model.JoinRequest
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusCreated, resp)
		}
	}()
	id, err := parseGroupID(c)
	if err != nil {
		return
	}
	if _, err = loadGroup(c, api.s, id); err != nil {
		return
	}
	userID, ok := mhttp.UserID(c)
	if !ok {
		err = errcode.ErrUnauthorized
		return
	}
	var req types.CreateJoinRequestReq
	if berr := c.ShouldBindJSON(&req); berr != nil {
		err = validate.BindError(berr)
		return
	}
	if err = validate.Struct(req); err != nil {
		return
	}
	request := &model.JoinRequest{
		GroupID: id,
		UserID:  userID,
		Email:   req.Email,
	}
	if _, err = api.s.JoinRequests.Insert(c.Request.Context(), request); err != nil {
		return
	}
	resp = request
}

func (api *JoinRequestApi) ListJoinRequests(c *gin.Context) {
	var (
		resp []*model.JoinRequest
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
		err = errcode.ErrOnlyCreatorRequests
		return
	}
	resp, err = api.s.JoinRequests.ListByGroupId(c.Request.Context(), id)
}
