package response

import (
	"net/http"

	"github.com/Hamdhan7/design-fabric-backend/pkg/errs"
	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

func WriteMessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

func WriteCreatedResponse(c echo.Context, message string, productID int64) error {
	return c.JSON(http.StatusCreated, CreatedResponse{Message: message, ProductID: productID})
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	return c.JSON(statusCode, MessageResponse{Message: err.Error()})
}
