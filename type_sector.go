package finpulse

import "fmt"

// Sector is the industry classification of a position.
type Sector string

// The fixed sector taxonomy.
const (
	Banking Sector = "Banking"
	IT      Sector = "IT"
	Auto    Sector = "Auto"
	Pharma  Sector = "Pharma"
	Energy  Sector = "Energy"
)

var sectors = []Sector{Banking, IT, Auto, Pharma, Energy}

// Sectors returns the taxonomy, in its canonical order.
func Sectors() []Sector {
	return append([]Sector(nil), sectors...)
}

// Valid reports whether s belongs to the taxonomy.
func (s Sector) Valid() bool {
	for _, v := range sectors {
		if v == s {
			return true
		}
	}
	return false
}

// ParseSector returns the sector named s, case sensitive.
func ParseSector(s string) (Sector, error) {
	sec := Sector(s)
	if !sec.Valid() {
		return "", fmt.Errorf("unknown sector %q", s)
	}
	return sec, nil
}
