package logic

import (
	"errors"
	"net/http"

	"circles/internal/common/errcode"
	"circles/internal/common/jwt"
	"circles/internal/common/middleware/mhttp"
	"circles/internal/common/response"
	"circles/internal/model"
	"circles/internal/server"
	"circles/internal/types"
	"circles/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthApi struct {
	s *server.Server
}

func NewAuthApi(s *server.Server) *AuthApi {
	return &AuthApi{s}
}

func (api *AuthApi) RegisterRouter(engine *gin.RouterGroup) {
	noauth := engine.Group("/auth")
	{
		noauth.POST("/register", api.Register)
		noauth.POST("/login", api.Login)
	}
	auth := engine.Group("/auth", mhttp.Auth(api.s.Sessions))
	{
		auth.POST("/logout", api.Logout)
		auth.GET("/me", api.Me)
	}
}

func (api *AuthApi) Register(c *gin.Context) {
	var (
		resp types.UserInfoResp
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusCreated, resp)
		}
	}()
	var req types.RegisterReq
	if berr := c.ShouldBindJSON(&req); berr != nil {
		err = validate.BindError(berr)
		return
	}
	if err = validate.Struct(req); err != nil {
		return
	}
	_, err = api.s.Users.FindOneByEmail(c.Request.Context(), req.Email)
	if err == nil {
		err = errcode.ErrEmailRegistered
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if _, err = api.s.Users.Insert(c.Request.Context(), user); err != nil {
		return
	}
	resp = types.UserInfoResp{
		Id:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func (api *AuthApi) Login(c *gin.Context) {
	var (
		resp types.LoginResp
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusOK, resp)
		}
	}()
	var req types.LoginReq
	if berr := c.ShouldBindJSON(&req); berr != nil {
		err = validate.BindError(berr)
		return
	}
	if err = validate.Struct(req); err != nil {
		return
	}
	user, err := api.s.Users.FindOneByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = errcode.ErrInvalidCredentials
		}
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		err = errcode.ErrInvalidCredentials
		return
	}
	sessionID := uuid.NewString()
	token, err := jwt.GenerateToken(user.ID, sessionID)
	if err != nil {
		return
	}
	if err = api.s.Sessions.Save(c.Request.Context(), user.ID, sessionID, jwt.Expiry()); err != nil {
		return
	}
	resp = types.LoginResp{Token: token}
}

func (api *AuthApi) Logout(c *gin.Context) {
	var err error
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.NoContent(c)
		}
	}()
	err = api.s.Sessions.Delete(c.Request.Context(), c.GetInt64("user_id"), c.GetString("session_id"))
}

func (api *AuthApi) Me(c *gin.Context) {
	var (
		resp types.UserInfoResp
		err  error
	)
	defer func() {
		if err != nil {
			response.Error(c, err)
		} else {
			response.JSON(c, http.StatusOK, resp)
		}
	}()
	user, err := api.s.Users.FindOne(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = errcode.ErrUserNotFound
		}
		return
	}
	resp = types.UserInfoResp{
		Id:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
