package shipments

import (
	"errors"
	"time"

	"herbadmin/models"
)

var (
	ErrDateRequired     = errors.New("Bitte gib das Datum der Lieferung ein!")
	ErrNoHerbs          = errors.New("Bitte füge Kräuter hinzu!")
	ErrInvalidHerbLines = errors.New("Bitte kontrolliere die Kräuter. In einzelnen Zeilen fehlen Kräuternamen oder die Anzahl!")
)

// ValidateShipment checks a cleaned-up shipment before it goes to the
// backend. The same herb may appear on several lines; the delivery is
// recorded as it arrived.
func ValidateShipment(s models.Shipment) error {
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return ErrDateRequired
	}
	if len(s.Lines) == 0 {
		return ErrNoHerbs
	}
	for _, line := range s.Lines {
		if line.HerbID <= 0 || line.Quantity <= 0 {
			return ErrInvalidHerbLines
		}
	}
	return nil
}
