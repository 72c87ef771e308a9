package controllers

import (
	"errors"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/pkg/resp"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrSlotFull):
		resp.Conflict(c, "this slot is fully booked")
	default:
		resp.ServerError(c, err)
	}
}
