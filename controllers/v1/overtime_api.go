package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	overtimehandler "page-control-backend/lib/overtime"
	apimodels "page-control-backend/models/api"
	overtimeapimodels "page-control-backend/models/api/overtime"
)

type overtimeApiController struct {
	controllers.BaseAPIController
}

func InitOvertimeApiRouters(app *fiber.App) {
	controller := overtimeApiController{}
	app.Route("overtime", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.listAll)
		router.Get("user/:userId", controller.listByUser)
		router.Get("summary/:userId/:holidayId", controller.summary)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Register an overtime entry
// @Tags Overtime
// @Description Register an overtime entry
// @Param	body	body	overtimeapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/overtime [post]
func (c *overtimeApiController) create(ctx *fiber.Ctx) error {
	var payload overtimeapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recordID, hMsg, err := overtimehandler.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create overtime record")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recordID))
}

// @Summary List all overtime records
// @Tags Overtime
// @Description List all overtime records
// @Success 200 {object} apimodels.Response{data=[]overtimeapimodels.RecordView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/overtime [get]
func (c *overtimeApiController) listAll(ctx *fiber.Ctx) error {
	list, err := overtimehandler.Instance.ListAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list overtime records")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List overtime records of one user
// @Tags Overtime
// @Description List overtime records of one user
// @Param	userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=[]overtimeapimodels.RecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/overtime/user/{userId} [get]
func (c *overtimeApiController) listByUser(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := overtimehandler.Instance.ListByUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list overtime records")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Hour usage summary of a user for a holiday
// @Tags Overtime
// @Description Hour usage summary of a user for a holiday
// @Param	userId		path	string	true	"user id"
// @Param	holidayId	path	string	true	"holiday id"
// @Success 200 {object} apimodels.Response{data=overtimeapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/overtime/summary/{userId}/{holidayId} [get]
func (c *overtimeApiController) summary(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	holidayID, err := c.GetIDByKey(ctx, "holidayId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := overtimehandler.Instance.Summary(ctx.UserContext(), userID, holidayID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build summary")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Delete an overtime record
// @Tags Overtime
// @Description Delete an overtime record
// @Param	id	path	string	true	"record id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/overtime/{id} [delete]
func (c *overtimeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := overtimehandler.Instance.Delete(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete overtime record")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
