package http

import (
	"herbadmin/frontend/batches"
	"herbadmin/frontend/bill"
	"herbadmin/frontend/collective"
	"herbadmin/frontend/exports"
	"herbadmin/frontend/login"
	"herbadmin/frontend/missing"
	"herbadmin/frontend/orders"
	"herbadmin/frontend/overview"
	"herbadmin/frontend/shipments"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes wires the login screen and the authenticated admin pages.
func (s *Server) RegisterRoutes() {
	s.router.Get("/admin", login.GetLoginScreenHandler)
	s.router.Post("/admin/login", login.CreateLoginHandler(s.Backend, s.DB, s.Sessions, s.Sealer))
	s.router.Post("/admin/logout", login.LogoutHandler(s.DB, s.Sessions))

	s.router.Group(func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.AuthenticateMiddleware)

			r.Get("/orders", orders.OrdersPageQueryHandler(s.Backend, s.Cfg))
			r.Post("/orders/price-mails", orders.PriceMailsCommandHandler(s.Backend))
			r.Get("/orders/new", orders.OrderFormQueryHandler(s.Backend, s.Cfg))
			r.Post("/orders/new", orders.SaveOrderCommandHandler(s.Backend))
			r.Get("/orders/{externalID}", orders.OrderFormQueryHandler(s.Backend, s.Cfg))
			r.Post("/orders/{externalID}", orders.SaveOrderCommandHandler(s.Backend))
			r.Get("/orders/{externalID}/packing_slip.pdf", exports.PackingSlipPDFHandler(s.Backend))

			r.Get("/collective_order", collective.CollectiveOrderPageQueryHandler(s.Backend, s.Cfg))

			r.Get("/order_batches", batches.BatchesPageQueryHandler(s.Backend, s.Cfg))
			r.Post("/order_batches", batches.CreateBatchCommandHandler(s.Backend))
			r.Get("/order_batches/{batchID}", overview.OverviewPageQueryHandler(s.Backend, s.Cfg))
			r.Post("/order_batches/{batchID}", overview.UpdateBatchCommandHandler(s.Backend))
			r.Get("/order_batches/{batchID}/missing_herbs", missing.MissingHerbsPageQueryHandler(s.Backend, s.Cfg))

			r.Get("/order_batches/{batchID}/shipments", shipments.ShipmentsPageQueryHandler(s.Backend, s.Cfg))
			r.Get("/order_batches/{batchID}/shipments/new", shipments.ShipmentFormQueryHandler(s.Backend, s.Cfg))
			r.Post("/order_batches/{batchID}/shipments/new", shipments.SaveShipmentCommandHandler(s.Backend))
			r.Get("/order_batches/{batchID}/shipments/{shipmentID}", shipments.ShipmentFormQueryHandler(s.Backend, s.Cfg))
			r.Post("/order_batches/{batchID}/shipments/{shipmentID}", shipments.SaveShipmentCommandHandler(s.Backend))

			r.Get("/order_batches/{batchID}/collective.xlsx", exports.CollectiveXLSXHandler(s.Backend))
			r.Get("/order_batches/{batchID}/collective.pdf", exports.CollectivePDFHandler(s.Backend))

			r.Get("/bills/{billID}", bill.BillPageQueryHandler(s.Backend, s.Cfg))
			r.Post("/bills/{billID}", bill.SaveBillCommandHandler(s.Backend))
		})
	})
}
