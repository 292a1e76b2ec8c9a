package lifecycle

import (
	"errors"
	"fmt"
)

// Pesan error di bawah sama persis dengan yang dilihat user di aplikasi
// lama, jangan diubah tanpa menyesuaikan frontend.
var (
	// ErrMissingSelection -> approve tanpa memilih driver/vehicle.
	// Dicek sebelum pengecekan konflik jadwal.
	ErrMissingSelection = errors.New("Select driver and vehicle")

	// ErrVehicleBusy -> kendaraan sudah dipakai job lain pada
	// tanggal + slot yang sama (ResourceConflict).
	ErrVehicleBusy = errors.New("Vehicle already assigned for this time slot")

	// ErrDriverUnavailable -> driver yang dipilih tidak berstatus AVAILABLE
	ErrDriverUnavailable = errors.New("Driver is not available")

	// ErrVehicleNotActive -> kendaraan berstatus MAINTENANCE / OUT_OF_SERVICE
	ErrVehicleNotActive = errors.New("Vehicle is not active")

	// ErrRejectReasonRequired -> reject tanpa alasan
	ErrRejectReasonRequired = errors.New("Rejection reason is required")
)

// PolicyViolationError menandai kombinasi (status, target, role) yang
// tidak ada di tabel transisi. Operasi ditolak tanpa efek apapun.
type PolicyViolationError struct {
	Role string
	From string
	To   string
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("transition %s -> %s not allowed for role %s", e.From, e.To, e.Role)
}

// IsPolicyViolation -> helper untuk caller membedakan error taxonomy
func IsPolicyViolation(err error) bool {
	var pv *PolicyViolationError
	return errors.As(err, &pv)
}

// IsConflict -> ResourceConflict (kendaraan bentrok / resource tidak siap)
func IsConflict(err error) bool {
	return errors.Is(err, ErrVehicleBusy) ||
		errors.Is(err, ErrDriverUnavailable) ||
		errors.Is(err, ErrVehicleNotActive)
}
