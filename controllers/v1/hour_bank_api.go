package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	hourbankhandler "page-control-backend/lib/hour-bank"
	apimodels "page-control-backend/models/api"
	hourbankapimodels "page-control-backend/models/api/hourbank"
)

type hourBankApiController struct {
	controllers.BaseAPIController
}

func InitHourBankApiRouters(app *fiber.App) {
	controller := hourBankApiController{}
	app.Route("hour-bank", func(router fiber.Router) {
		router.Post("submit", controller.submitManual)
		router.Post("analyze", controller.submitAnalyzed)
		router.Post("process-approval", controller.processApproval)
		router.Get("admin-approval", controller.pendingApprovals)
		router.Post("admin-approval", controller.adminDecision)
		router.Get("compensations", controller.allCompensations)
		router.Patch("compensations/:id", controller.patchCompensation)
		router.Get("user/:userId", controller.userCompensations)
		router.Get("user-hours/:userId/:holidayId", controller.userHours)
	})
}

// @Summary Submit bank hours with a proof image for manual review
// @Tags Hour bank
// @Description Submit bank hours with a proof image for manual review
// @Param	body	body	hourbankapimodels.ManualSubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/submit [post]
func (c *hourBankApiController) submitManual(ctx *fiber.Ctx) error {
	var payload hourbankapimodels.ManualSubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recordID, hMsg, err := hourbankhandler.Instance.SubmitManual(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit bank hours")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recordID))
}

// @Summary Submit bank hours with server-side proof analysis
// @Tags Hour bank
// @Description Submit bank hours with server-side proof analysis
// @Param	body	body	hourbankapimodels.AnalyzeSubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=hourbankapimodels.CompensationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/analyze [post]
func (c *hourBankApiController) submitAnalyzed(ctx *fiber.Ctx) error {
	var payload hourbankapimodels.AnalyzeSubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := hourbankhandler.Instance.SubmitAnalyzed(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to analyze proof")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Record an externally produced analysis verdict
// @Tags Hour bank
// @Description Record an externally produced analysis verdict
// @Param	body	body	hourbankapimodels.ProcessApprovalRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/process-approval [post]
func (c *hourBankApiController) processApproval(ctx *fiber.Ctx) error {
	var payload hourbankapimodels.ProcessApprovalRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	compensationID, hMsg, err := hourbankhandler.Instance.ProcessApproval(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process approval")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(compensationID))
}

// @Summary List bank records awaiting admin review
// @Tags Hour bank
// @Description List bank records awaiting admin review
// @Success 200 {object} apimodels.Response{data=[]overtimeapimodels.RecordView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/admin-approval [get]
func (c *hourBankApiController) pendingApprovals(ctx *fiber.Ctx) error {
	list, err := hourbankhandler.Instance.PendingApprovals()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list pending approvals")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Approve or reject a pending bank record
// @Tags Hour bank
// @Description Approve or reject a pending bank record
// @Param	body	body	hourbankapimodels.AdminApprovalRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/admin-approval [post]
func (c *hourBankApiController) adminDecision(ctx *fiber.Ctx) error {
	var payload hourbankapimodels.AdminApprovalRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := hourbankhandler.Instance.AdminDecision(ctx.UserContext(), payload)
	if err != nil {
		if err == hourbankhandler.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("record not found"))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process admin decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List all compensations
// @Tags Hour bank
// @Description List all compensations
// @Success 200 {object} apimodels.Response{data=[]hourbankapimodels.CompensationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/compensations [get]
func (c *hourBankApiController) allCompensations(ctx *fiber.Ctx) error {
	list, err := hourbankhandler.Instance.AllCompensations()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list compensations")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Update the status of a compensation
// @Tags Hour bank
// @Description Update the status of a compensation
// @Param	id		path	string	true	"compensation id"
// @Param	body	body	hourbankapimodels.CompensationPatchRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/compensations/{id} [patch]
func (c *hourBankApiController) patchCompensation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hourbankapimodels.CompensationPatchRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := hourbankhandler.Instance.PatchCompensation(ctx.UserContext(), id, payload)
	if err != nil {
		if err == hourbankhandler.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("compensation not found"))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update compensation")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List compensations of one user
// @Tags Hour bank
// @Description List compensations of one user
// @Param	userId	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=[]hourbankapimodels.CompensationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/user/{userId} [get]
func (c *hourBankApiController) userCompensations(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := hourbankhandler.Instance.UserCompensations(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list user compensations")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Total approved detected hours of a user for a holiday
// @Tags Hour bank
// @Description Total approved detected hours of a user for a holiday
// @Param	userId		path	string	true	"user id"
// @Param	holidayId	path	string	true	"holiday id"
// @Success 200 {object} apimodels.Response{data=hourbankapimodels.UserHoursView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hour-bank/user-hours/{userId}/{holidayId} [get]
func (c *hourBankApiController) userHours(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	holidayID, err := c.GetIDByKey(ctx, "holidayId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := hourbankhandler.Instance.UserHours(userID, holidayID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to sum user hours")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
