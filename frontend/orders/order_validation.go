package orders

import (
	"errors"
	"strings"

	"herbadmin/models"
)

var (
	ErrFirstNameRequired = errors.New("Bitte gib den Vornamen ein!")
	ErrLastNameRequired  = errors.New("Bitte gib den Nachnamen ein!")
	ErrMailRequired      = errors.New("Bitte gib die E-Mail-Adresse ein!")
	ErrNoHerbs           = errors.New("Bitte füge Kräuter hinzu!")
	ErrInvalidHerbLines  = errors.New("Bitte kontrolliere die Kräuter. In einzelnen Zeilen fehlen Kräuternamen oder die Anzahl!")
	ErrDuplicateHerbs    = errors.New("Bitte entferne die doppelten Kräuter!")
)

// ValidateOrder checks a cleaned-up order before it is sent to the backend.
// Lines must already have empty rows stripped.
func ValidateOrder(o models.Order) error {
	if strings.TrimSpace(o.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(o.LastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(o.Mail) == "" {
		return ErrMailRequired
	}
	if len(o.Lines) == 0 {
		return ErrNoHerbs
	}

	seen := make(map[int64]bool, len(o.Lines))
	for _, line := range o.Lines {
		if line.HerbID <= 0 || line.Quantity <= 0 {
			return ErrInvalidHerbLines
		}
		if seen[line.HerbID] {
			return ErrDuplicateHerbs
		}
		seen[line.HerbID] = true
	}
	return nil
}
