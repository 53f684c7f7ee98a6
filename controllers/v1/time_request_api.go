package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	timerequesthandler "page-control-backend/lib/time-request"
	apimodels "page-control-backend/models/api"
	timereqapimodels "page-control-backend/models/api/timereq"
)

type timeRequestApiController struct {
	controllers.BaseAPIController
}

func InitTimeRequestApiRouters(app *fiber.App) {
	controller := timeRequestApiController{}
	app.Route("time-requests", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("pending", controller.listPending)
		router.Get("user/:userId", controller.listByUser)
		router.Post(":id/decision", controller.decide)
	})
}

// @Summary Request a missing entry or exit time correction
// @Tags Time requests
// @Description Request a missing entry or exit time correction
// @Param	body	body	timereqapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time-requests [post]
func (c *timeRequestApiController) create(ctx *fiber.Ctx) error {
	var payload timereqapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := timerequesthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create time request")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List pending time requests
// @Tags Time requests
// @Description List pending time requests
// @Success 200 {object} apimodels.Response{data=[]timereqapimodels.TimeRequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time-requests/pending [get]
func (c *timeRequestApiController) listPending(ctx *fiber.Ctx) error {
	list, err := timerequesthandler.Instance.ListPending()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list time requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List time requests of one user
// @Tags Time requests
// @Description List time requests of one user
// @Param	userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=[]timereqapimodels.TimeRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time-requests/user/{userId} [get]
func (c *timeRequestApiController) listByUser(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := timerequesthandler.Instance.ListByUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list time requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Approve or reject a time request
// @Tags Time requests
// @Description Approve or reject a time request
// @Param	id		path	string	true	"request id"
// @Param	body	body	timereqapimodels.DecisionRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/time-requests/{id}/decision [post]
func (c *timeRequestApiController) decide(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timereqapimodels.DecisionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := timerequesthandler.Instance.Decide(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
