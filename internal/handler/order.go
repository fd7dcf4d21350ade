package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"pizzeria/internal/service"
	"pizzeria/internal/web"
)

const (
	msgPlaced  = "Your order has been placed successfully"
	msgUpdated = "Your order has been updated successfully"
	msgDeleted = "Your order has been deleted successfully"
)

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

func ListOrdersHandler(orderSvc *service.OrderService, views Renderer) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		orders, err := orderSvc.List(r.Context())
		if err != nil {
			return err
		}
		return render(w, views, web.ViewOrders, web.OrdersPage{Orders: orders})
	})
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parse form: %w", err)
		}

		if _, err := orderSvc.Create(r.Context(), service.FormFromValues(r.PostForm)); err != nil {
			return err
		}

		redirectSuccess(w, r, msgPlaced)
		return nil
	})
}

// GetOrderHandler renders the order page even when the id matches nothing;
// the view shows its not-found block in that case.
func GetOrderHandler(orderSvc *service.OrderService, views Renderer) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		order, err := orderSvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			return err
		}
		return render(w, views, web.ViewOrder, web.OrderPage{Order: order})
	})
}

func UpdateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parse form: %w", err)
		}

		if _, err := orderSvc.Update(r.Context(), chi.URLParam(r, "id"), service.FormFromValues(r.PostForm)); err != nil {
			return err
		}

		redirectSuccess(w, r, msgUpdated)
		return nil
	})
}

func DeleteOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := orderSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			return err
		}

		redirectSuccess(w, r, msgDeleted)
		return nil
	})
}

func render(w http.ResponseWriter, views Renderer, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return views.Render(w, name, data)
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/success?message="+url.QueryEscape(message), http.StatusFound)
}
