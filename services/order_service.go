package services

import (
	"errors"
	"log"
	"time"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/repository"
	"gorm.io/gorm"
)

// ReservationSlots are the bookable hours, each with a shared daily
// capacity of SlotCapacity reservations.
var ReservationSlots = []string{"19", "20", "21", "22"}

const SlotCapacity = 5

// Fixed service fee per order kind.
var serviceFees = map[string]float64{
	entity.KindProprio:  15,
	entity.KindParceiro: 5,
	entity.KindReserva:  10,
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, UserRepo: userRepo}
}

// ----- DTOs -----

type OrderLineIn struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	UnitPrice  float64 `json:"unitPrice" binding:"required"`
}

type CreateOrderReq struct {
	Kind  string        `json:"kind" binding:"required"`
	Slot  string        `json:"slot"`
	Total float64       `json:"total"`
	Lines []OrderLineIn `json:"lines" binding:"required,min=1"`
}

type CreateOrderRes struct {
	ID    uint    `json:"id"`
	Total float64 `json:"total"`
}

// ExpectedTotal recomputes what the order should cost from its lines
// and the kind's service fee. The submitted total is persisted as-is
// today; this is the single place to enforce it from, should that gap
// ever be closed.
func ExpectedTotal(lines []OrderLineIn, kind string) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum + serviceFees[kind]
}

func validSlot(slot string) bool {
	for _, s := range ReservationSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ----- Create -----

func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Lines) == 0 {
		return nil, validationf("select at least one item")
	}
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return nil, validationf("quantity must be positive")
		}
	}
	if _, ok := serviceFees[req.Kind]; !ok {
		return nil, validationf("unknown order kind %q", req.Kind)
	}

	switch req.Kind {
	case entity.KindReserva:
		if !validSlot(req.Slot) {
			return nil, validationf("choose a reservation slot")
		}
		// check-then-act: not atomic with the insert below, two
		// concurrent submissions can both pass and overbook
		count, err := s.Repo.CountReservations(time.Now(), req.Slot)
		if err != nil {
			return nil, err
		}
		if count >= SlotCapacity {
			return nil, ErrSlotFull
		}
	default:
		if req.Slot != "" {
			return nil, validationf("slot is only valid for reservations")
		}
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:          userID,
			Kind:            req.Kind,
			Slot:            req.Slot,
			DeliveryAddress: user.Address, // snapshot, not live-linked
			Total:           req.Total,    // trusted as submitted
			Status:          entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range req.Lines {
			line := entity.OrderLine{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
			}
			if err := s.Repo.CreateLine(tx, &line); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Listings -----

func (s *OrderService) ListMine(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

// ----- Status workflow -----

// SetStatus overwrites the status unconditionally. There is no guard
// against leaving confirmed or canceled; the admin UI is trusted here.
func (s *OrderService) SetStatus(orderID uint, status string) error {
	switch status {
	case entity.StatusPending, entity.StatusConfirmed, entity.StatusCanceled:
	default:
		return validationf("unknown status %q", status)
	}

	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.UpdateStatus(order.ID, status); err != nil {
		return err
	}
	s.notifyStatusChange(order, status)
	return nil
}

// CancelOwn lets a customer cancel their own order while it is still
// pending.
func (s *OrderService) CancelOwn(userID, orderID uint) error {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if order.UserID != userID {
		return ErrForbidden
	}
	if order.Status != entity.StatusPending {
		return validationf("only pending orders can be canceled")
	}

	if err := s.Repo.UpdateStatus(order.ID, entity.StatusCanceled); err != nil {
		return err
	}
	s.notifyStatusChange(order, entity.StatusCanceled)
	return nil
}

// notification stub, logs instead of sending
func (s *OrderService) notifyStatusChange(order *entity.Order, status string) {
	log.Printf("order %d: status changed to %s (customer %d)", order.ID, status, order.UserID)
}

// ----- Slot availability -----

type SlotInfo struct {
	Available        bool  `json:"available"`
	ReservationCount int64 `json:"reservationCount"`
	RemainingSlots   int64 `json:"remainingSlots"`
}

// SlotAvailability reports per-slot occupancy for one calendar day.
func (s *OrderService) SlotAvailability(date time.Time) (map[string]SlotInfo, error) {
	out := make(map[string]SlotInfo, len(ReservationSlots))
	for _, slot := range ReservationSlots {
		count, err := s.Repo.CountReservations(date, slot)
		if err != nil {
			return nil, err
		}
		remaining := int64(SlotCapacity) - count
		if remaining < 0 {
			remaining = 0
		}
		out[slot] = SlotInfo{
			Available:        count < SlotCapacity,
			ReservationCount: count,
			RemainingSlots:   remaining,
		}
	}
	return out, nil
}
