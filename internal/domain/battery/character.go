package battery

import (
	"errors"
	"fmt"
	"unicode"
)

// MaxBrandLength is the maximum brand length in bytes.
const MaxBrandLength = 47

var (
	// ErrBrandTooLong is returned when a brand exceeds MaxBrandLength bytes.
	ErrBrandTooLong = errors.New("brand is too long")
	// ErrBrandNotPrintable is returned when a brand contains non-printable characters.
	ErrBrandNotPrintable = errors.New("brand contains non-printable characters")
)

// BatteryCharacter describes the battery being checked.
type BatteryCharacter struct {
	// CoolingType selects the temperature limits.
	CoolingType CoolingType
	// Brand is carried along for callers; classification never reads it.
	Brand string
}

// NewBatteryCharacter validates the inputs and builds a BatteryCharacter.
func NewBatteryCharacter(coolingType CoolingType, brand string) (BatteryCharacter, error) {
	if !coolingType.Valid() {
		return BatteryCharacter{}, fmt.Errorf("%w: %v", ErrUnknownCoolingType, coolingType)
	}

	if err := ValidateBrand(brand); err != nil {
		return BatteryCharacter{}, err
	}

	return BatteryCharacter{
		CoolingType: coolingType,
		Brand:       brand,
	}, nil
}

// ValidateBrand checks the brand length and that every rune is printable.
func ValidateBrand(brand string) error {
	if len(brand) > MaxBrandLength {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrBrandTooLong, len(brand), MaxBrandLength)
	}

	for _, r := range brand {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %q", ErrBrandNotPrintable, brand)
		}
	}

	return nil
}
