package handlers

import (
	"net/http"

	"BE-Cafe-Corner/app/usecases"
	"BE-Cafe-Corner/config"

	"github.com/labstack/echo/v4"
)

type ImageHandler struct {
	imageUsecase usecases.ImageUsecase
	cfg          *config.Config
}

func NewImageHandler(imageUsecase usecases.ImageUsecase, cfg *config.Config) *ImageHandler {
	return &ImageHandler{imageUsecase: imageUsecase, cfg: cfg}
}

// UploadImage godoc
// @Summary Upload an image (admin)
// @Description Stores the file in the temp folder; it becomes permanent when a menu item or post references it
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (jpeg/png, max 2MB)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/uploads [post]
func (h *ImageHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "no image file in request"})
	}

	url, err := h.imageUsecase.UploadImage(file, h.cfg.Server.BaseURL)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "upload success", "url": url})
}
