package handlers

import (
	"github.com/gin-gonic/gin"

	"crudkit/internal/app"
	"crudkit/internal/domain"
	"crudkit/internal/services"
)

// AuthController exposes login and registration. Both run through the
// generic service pipeline so plugins can hook account creation and sign-in
// the same way they hook entity writes.
type AuthController struct {
	Login    *app.LoginProcessor
	Register *app.RegisterProcessor

	LoginHooks    *services.EntityHooks[app.LoginRequest]
	RegisterHooks *services.EntityHooks[app.RegisterRequest]
}

func (ctl *AuthController) Mount(g *gin.RouterGroup) {
	g.POST("/login", ctl.HandleLogin)
	g.POST("/register", ctl.HandleRegister)
}

func (ctl *AuthController) HandleLogin(c *gin.Context) {
	var request app.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		notifier := domain.NewCollector()
		notifier.Error(domain.MsgBadRequest)
		WriteResult(c, domain.Fail[any](domain.Unprocessable, domain.MsgBadRequest), notifier)
		return
	}

	notifier := domain.NewCollector()
	service := services.NewService[app.LoginRequest, string](ctl.Login, ctl.LoginHooks, notifier)
	res := service.Execute(c.Request.Context(), request)
	WriteResult(c, res, notifier)
}

func (ctl *AuthController) HandleRegister(c *gin.Context) {
	var request app.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		notifier := domain.NewCollector()
		notifier.Error(domain.MsgBadRequest)
		WriteResult(c, domain.Fail[any](domain.Unprocessable, domain.MsgBadRequest), notifier)
		return
	}

	notifier := domain.NewCollector()
	service := services.NewStatusService[app.RegisterRequest](ctl.Register, ctl.RegisterHooks, notifier)
	res := service.Execute(c.Request.Context(), request)
	if res.Succeeded() {
		notifier.Success("Account created successfully")
	}
	WriteResult(c, res, notifier)
}
