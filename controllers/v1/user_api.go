package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"page-control-backend/controllers"
	usershandler "page-control-backend/lib/users"
	apimodels "page-control-backend/models/api"
	usersapimodels "page-control-backend/models/api/users"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id/profile-picture", controller.updateProfilePicture)
	})
}

// @Summary List users
// @Tags Users
// @Description List users
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.UserView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list users")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a user
// @Tags Users
// @Description Get a user
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := usershandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get user")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("user not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update the profile picture of a user
// @Tags Users
// @Description Update the profile picture of a user
// @Param	id		path	string	true	"user id"
// @Param	body	body	usersapimodels.ProfilePictureRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/profile-picture [put]
func (c *userApiController) updateProfilePicture(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload usersapimodels.ProfilePictureRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := usershandler.Instance.UpdateProfilePicture(ctx.UserContext(), id, payload.Image)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update profile picture")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
