// FILE: internal/controller/plan_controller.go
// Controller for plan-related endpoints
package controller

import (
	"saas-notes-be/internal/pkg/serverutils"
	"saas-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PlanController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type planController struct {
	planService service.PlanService
}

func NewPlanController(planService service.PlanService) PlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	h := api.Group("/plan/v1", jwtMiddleware)
	h.Get("/usage", c.GetUsageStatus)
}

// GetUsageStatus returns current usage vs limit for the authenticated session
// @Summary Get session usage status
// @Description Returns the plan, note count, note limit and whether a new note may be created
// @Tags Plans
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UsageStatusResponse
// @Router /api/plan/v1/usage [get]
func (c *planController) GetUsageStatus(ctx *fiber.Ctx) error {
	status, err := c.planService.GetUsageStatus(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Usage status retrieved", status))
}
