package bill

import (
	"errors"
	"time"

	"herbadmin/models"
)

var (
	ErrInvalidPrices = errors.New("Bitte kontrolliere die Preise! Mindestens ein Preis fehlt oder hat ein invalides Format.")
	ErrDateRequired  = errors.New("Bitte gib das Rechnungsdatum ein!")
	ErrVATRequired   = errors.New("Bitte gib die Mehrwertsteuer ein!")
	ErrNoLines       = errors.New("Bitte füge Rechnungsposten hinzu!")
	ErrInvalidLines  = errors.New("Bitte kontrolliere die Kräuter. In einzelnen Zeilen fehlen Kräuternamen, Preise oder die Anzahl!")
)

// ValidateBill checks a parsed bill. Price format errors are caught during
// parsing; this covers the remaining fields. Unlike orders, the same herb
// may appear on several lines.
func ValidateBill(b models.Bill) error {
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return ErrDateRequired
	}
	if b.VAT < 0 {
		return ErrVATRequired
	}
	if len(b.Lines) == 0 {
		return ErrNoLines
	}
	for _, line := range b.Lines {
		if line.HerbID <= 0 || line.Quantity <= 0 {
			return ErrInvalidLines
		}
	}
	return nil
}
