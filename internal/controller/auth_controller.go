// FILE: internal/controller/auth_controller.go
package controller

import (
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/internal/pkg/serverutils"
	"saas-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Accounts(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	QuickLogin(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Upgrade(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/auth/v1")
	h.Get("/accounts", c.Accounts)
	h.Post("/login", c.Login)
	h.Post("/quick-login", c.QuickLogin)

	// Authenticated
	h.Post("/logout", jwtMiddleware, c.Logout)
	h.Post("/upgrade", jwtMiddleware, c.Upgrade)
	h.Get("/me", jwtMiddleware, c.Me)
}

func (c *authController) Accounts(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Demo accounts", c.service.Accounts(ctx.UserContext())))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body", nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Welcome to "+res.User.Tenant+"!", res))
}

func (c *authController) QuickLogin(ctx *fiber.Ctx) error {
	var req dto.QuickLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body", nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.QuickLogin(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Logged in as "+res.User.Role+" at "+res.User.Tenant, res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.UserContext(), serverutils.SessionID(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("You have been successfully logged out", nil))
}

func (c *authController) Upgrade(ctx *fiber.Ctx) error {
	res, err := c.service.Upgrade(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Upgraded to Pro! You now have unlimited notes", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	res, err := c.service.Me(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}
