package domain

// DefaultLimit is the page size used when the caller does not specify one.
const DefaultLimit = 20

// MaxLimit is the largest page size a caller may request.
const MaxLimit = 200

// Page holds offset-based pagination parameters for list operations.
// Values are validated at the API boundary; Validate is the single place
// that enforces the bounds.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns the page used when no parameters are supplied.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit, Offset: 0}
}

// Validate rejects limits outside [1, MaxLimit] and negative offsets.
func (p Page) Validate() error {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ErrValidation("limit must be between 1 and %d, got %d", MaxLimit, p.Limit)
	}
	if p.Offset < 0 {
		return ErrValidation("offset must be >= 0, got %d", p.Offset)
	}
	return nil
}
