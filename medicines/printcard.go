package medicines

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
)

// PrintRecipeCard renders a medicine as a printable PDF recipe card.
func (h *Handler) PrintRecipeCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	m, found, err := h.store.Get(ctx, ps.ByName("id"))
	if err != nil {
		log.Printf("medicines: print fetch failed: %v", err)
		http.Error(w, "Failed to fetch medicine", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Medicine not found", http.StatusNotFound)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, m.Name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Category: %s    Difficulty: %s", m.Category, m.Difficulty))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Time: %s    Shelf life: %s", m.Time, m.ShelfLife))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Ingredients")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, ing := range m.Ingredients {
		pdf.Cell(0, 6, fmt.Sprintf("- %s (%s)", ing.PlantName, ing.Amount))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Preparation")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, m.Preparation, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Dosage")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, m.Dosage, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=recipe-"+m.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
