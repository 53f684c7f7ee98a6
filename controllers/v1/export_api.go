package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	exporthandler "page-control-backend/lib/export"
	apimodels "page-control-backend/models/api"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Get("overtime", controller.overtimeXLS)
		router.Get("statement/:userId/:holidayId", controller.statement)
	})
}

// @Summary Export all overtime records as an xlsx file
// @Tags Export
// @Description Export all overtime records as an xlsx file
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/overtime [get]
func (c *exportApiController) overtimeXLS(ctx *fiber.Ctx) error {
	buf, err := exporthandler.Instance.OvertimeXLS()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export overtime records")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="overtime_records.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Hour statement of a user for a holiday as a pdf file
// @Tags Export
// @Description Hour statement of a user for a holiday as a pdf file
// @Param	userId		path	string	true	"user id"
// @Param	holidayId	path	string	true	"holiday id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/statement/{userId}/{holidayId} [get]
func (c *exportApiController) statement(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	holidayID, err := c.GetIDByKey(ctx, "holidayId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, hMsg, err := exporthandler.Instance.Statement(userID, holidayID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate statement")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="statement.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
