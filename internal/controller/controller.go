package controller

import (
	"net/http"
	"strconv"

	"github.com/Hamdhan7/design-fabric-backend/internal/dto"
	"github.com/Hamdhan7/design-fabric-backend/internal/service"
	"github.com/Hamdhan7/design-fabric-backend/pkg/errs"
	"github.com/Hamdhan7/design-fabric-backend/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	productService service.ProductService
	orderService   service.OrderService
}

func CreateController(e *echo.Group, productService service.ProductService, orderService service.OrderService) {
	c := Controller{
		productService: productService,
		orderService:   orderService,
	}

	e.POST("/products", c.AddProduct)
	e.PUT("/products/:productId", c.UpdateProduct)
	e.DELETE("/products/:productId", c.DeleteProduct)
	e.GET("/orders", c.GetOrders)
	e.DELETE("/orders/:orderId", c.DeleteOrder)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	image, err := e.FormFile("image")
	if err != nil {
		image = nil
	}

	id, err := c.productService.AddProduct(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Product added successfully", id)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	id := e.Param("productId")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	image, err := e.FormFile("image")
	if err != nil {
		image = nil
	}

	payload.ID = idInt
	err = c.productService.UpdateProduct(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Product updated successfully")
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("productId")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	err = c.productService.DeleteProduct(e.Request().Context(), idInt)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Product deleted successfully")
}

func (c *Controller) GetOrders(e echo.Context) error {
	respPayload, err := c.orderService.GetOrders(e.Request().Context())
	if err != nil {
		return e.String(http.StatusInternalServerError, "Error retrieving orders")
	}

	return e.JSON(http.StatusOK, respPayload)
}

func (c *Controller) DeleteOrder(e echo.Context) error {
	id := e.Param("orderId")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	err = c.orderService.DeleteOrder(e.Request().Context(), idInt)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Order deleted successfully")
}
