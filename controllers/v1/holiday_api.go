package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	holidayhandler "page-control-backend/lib/holiday"
	apimodels "page-control-backend/models/api"
	holidayapimodels "page-control-backend/models/api/holiday"
)

type holidayApiController struct {
	controllers.BaseAPIController
}

func InitHolidayApiRouters(app *fiber.App) {
	controller := holidayApiController{}
	app.Route("holidays", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id/active", controller.setActive)
	})
}

// @Summary Create a holiday
// @Tags Holidays
// @Description Create a holiday
// @Param	body	body	holidayapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays [post]
func (c *holidayApiController) create(ctx *fiber.Ctx) error {
	var payload holidayapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := holidayhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create holiday")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List holidays
// @Tags Holidays
// @Description List holidays, active only by default
// @Param	all	query	bool	false	"include inactive holidays"
// @Success 200 {object} apimodels.Response{data=[]holidayapimodels.HolidayView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays [get]
func (c *holidayApiController) list(ctx *fiber.Ctx) error {
	includeInactive := ctx.QueryBool("all", false)
	list, err := holidayhandler.Instance.List(!includeInactive)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list holidays")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a holiday
// @Tags Holidays
// @Description Get a holiday
// @Param	id	path	string	true	"holiday id"
// @Success 200 {object} apimodels.Response{data=holidayapimodels.HolidayView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays/{id} [get]
func (c *holidayApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := holidayhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get holiday")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("holiday not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Activate or deactivate a holiday
// @Tags Holidays
// @Description Activate or deactivate a holiday
// @Param	id		path	string	true	"holiday id"
// @Param	active	query	bool	false	"new active state"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/holidays/{id}/active [put]
func (c *holidayApiController) setActive(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	active := ctx.QueryBool("active", true)
	hMsg, err := holidayhandler.Instance.SetActive(id, active)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update holiday")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
