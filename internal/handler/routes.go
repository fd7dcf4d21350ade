package handler

import (
	"io/fs"

	"github.com/go-chi/chi/v5"

	"pizzeria/internal/service"
)

// Register mounts the order site on r. Middleware must already be installed.
func Register(r chi.Router, orderSvc *service.OrderService, views Renderer, public fs.FS) {
	r.Get("/favicon.ico", FaviconHandler)
	r.Get("/success", SuccessHandler(views))

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ListOrdersHandler(orderSvc, views))
		r.Post("/", CreateOrderHandler(orderSvc))

		r.Get("/{id}", GetOrderHandler(orderSvc, views))
		r.Put("/{id}", UpdateOrderHandler(orderSvc))
		r.Delete("/{id}", DeleteOrderHandler(orderSvc))
	})

	static := StaticHandler(public)
	r.Get("/*", static.ServeHTTP)
	r.Head("/*", static.ServeHTTP)

	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)
}
