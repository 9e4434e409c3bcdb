package v1

import (
	"net/http"

	"github.com/growvest/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PUT("", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get profile
// @Description	Returns the profile. Responds with 412 when onboarding has not happened yet.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		412	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := svc.Profile()
	if err != nil {
		s := message(err)
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Set profile
// @Description	Creates the profile or replaces the existing one
// @Tags			Profile
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [put]
func UpdateProfile(c *gin.Context) {
	var editable ProfileEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := message(err)
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	profile, err := svc.SaveProfile(editable.draft())
	if err != nil {
		e := message(err)
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}
