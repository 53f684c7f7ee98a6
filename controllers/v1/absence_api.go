package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	absencehandler "page-control-backend/lib/absence"
	apimodels "page-control-backend/models/api"
	absenceapimodels "page-control-backend/models/api/absence"
)

type absenceApiController struct {
	controllers.BaseAPIController
}

func InitAbsenceApiRouters(app *fiber.App) {
	controller := absenceApiController{}
	app.Route("absence", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.listAll)
		router.Get("user/:userId", controller.listByUser)
		router.Post(":id/proof", controller.attachProof)
		router.Post(":id/decision", controller.decide)
	})
}

// @Summary Submit an absence request
// @Tags Absence
// @Description Submit an absence request, optionally with a proof image
// @Param	body	body	absenceapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/absence [post]
func (c *absenceApiController) create(ctx *fiber.Ctx) error {
	var payload absenceapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := absencehandler.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create absence request")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List all absence requests
// @Tags Absence
// @Description List all absence requests
// @Success 200 {object} apimodels.Response{data=[]absenceapimodels.AbsenceView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/absence [get]
func (c *absenceApiController) listAll(ctx *fiber.Ctx) error {
	list, err := absencehandler.Instance.ListAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list absence requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List absence requests of one user
// @Tags Absence
// @Description List absence requests of one user
// @Param	userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=[]absenceapimodels.AbsenceView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/absence/user/{userId} [get]
func (c *absenceApiController) listByUser(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := absencehandler.Instance.ListByUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list absence requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Attach a proof image to an absence request
// @Tags Absence
// @Description Attach a proof image to an absence request
// @Param	id		path	string	true	"request id"
// @Param	body	body	absenceapimodels.ProofRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/absence/{id}/proof [post]
func (c *absenceApiController) attachProof(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload absenceapimodels.ProofRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := absencehandler.Instance.AttachProof(ctx.UserContext(), id, payload.Image)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to attach proof")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve or reject an absence request
// @Tags Absence
// @Description Approve or reject an absence request
// @Param	id		path	string	true	"request id"
// @Param	body	body	absenceapimodels.DecisionRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/absence/{id}/decision [post]
func (c *absenceApiController) decide(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload absenceapimodels.DecisionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := absencehandler.Instance.Decide(id, payload.Action)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
