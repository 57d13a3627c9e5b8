package exports

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"herbadmin/frontend/collective"
	"herbadmin/frontend/shared/context"
	"herbadmin/infrastructure/backend"
)

// CollectiveXLSXHandler streams the collective order as an Excel workbook.
func CollectiveXLSXHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		batchID, err := strconv.ParseInt(chi.URLParam(r, "batchID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		batch, err := client.OrderBatch(r.Context(), session.Credential, batchID)
		if err != nil {
			slog.Error("exports: failed to load order batch", slog.Int64("batch_id", batchID), slog.Any("err", err))
			http.Error(w, "failed to load order batch", http.StatusInternalServerError)
			return
		}
		rows, err := collective.LoadCollectiveOrder(r.Context(), client, session.Credential)
		if err != nil {
			slog.Error("exports: failed to load collective order", slog.Any("err", err))
			http.Error(w, "failed to load collective order", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename=collective.xlsx`)
		if err := writeCollectiveXLSX(w, batch.Name, rows); err != nil {
			slog.Error("exports: failed to write xlsx", slog.Any("err", err))
		}
	}
}

// CollectivePDFHandler streams the collective order as a printable PDF.
func CollectivePDFHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		batchID, err := strconv.ParseInt(chi.URLParam(r, "batchID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		batch, err := client.OrderBatch(r.Context(), session.Credential, batchID)
		if err != nil {
			slog.Error("exports: failed to load order batch", slog.Int64("batch_id", batchID), slog.Any("err", err))
			http.Error(w, "failed to load order batch", http.StatusInternalServerError)
			return
		}
		rows, err := collective.LoadCollectiveOrder(r.Context(), client, session.Credential)
		if err != nil {
			slog.Error("exports: failed to load collective order", slog.Any("err", err))
			http.Error(w, "failed to load collective order", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := renderCollectivePDF(batch.Name, rows)
		if err != nil {
			slog.Error("exports: failed to render collective pdf", slog.Any("err", err))
			http.Error(w, "failed to render pdf", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename=collective.pdf`)
		_, _ = w.Write(pdfBytes)
	}
}

// PackingSlipPDFHandler streams the packing slip of one order. The barcode
// on the slip is the external order id.
func PackingSlipPDFHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := context.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		externalID := chi.URLParam(r, "externalID")
		order, err := client.Order(r.Context(), session.Credential, externalID)
		if errors.Is(err, backend.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			slog.Error("exports: failed to load order", slog.String("external_id", externalID), slog.Any("err", err))
			http.Error(w, "failed to load order", http.StatusInternalServerError)
			return
		}

		herbs, err := client.Herbs(r.Context())
		if err != nil {
			slog.Error("exports: failed to load herb catalog", slog.Any("err", err))
			http.Error(w, "failed to load herbs", http.StatusInternalServerError)
			return
		}
		pdfBytes, err := renderPackingSlipPDF(order, backend.HerbsByID(herbs))
		if err != nil {
			slog.Error("exports: failed to render packing slip", slog.String("external_id", externalID), slog.Any("err", err))
			http.Error(w, "failed to render pdf", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename=packing_slip.pdf`)
		_, _ = w.Write(pdfBytes)
	}
}
