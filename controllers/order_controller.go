package controllers

import (
	"strconv"
	"time"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/pkg/resp"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/services"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "missing or invalid token")
		return
	}

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(uid, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/mine
func (oc *OrderController) ListMine(c *gin.Context) {
	orders, err := oc.Service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/all — admin
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PUT /orders/:id/status — admin, body is the raw status string
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var status string
	if err := c.ShouldBindJSON(&status); err != nil {
		resp.BadRequest(c, "invalid status payload")
		return
	}

	if err := oc.Service.SetStatus(uint(id), status); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id), "status": status})
}

// PUT /orders/:id/cancel — owning customer, pending only
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Service.CancelOwn(utils.CurrentUserID(c), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id), "status": "canceled"})
}

// GET /orders/slots?date=YYYY-MM-DD
func (oc *OrderController) Slots(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	slots, err := oc.Service.SlotAvailability(date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, slots)
}
