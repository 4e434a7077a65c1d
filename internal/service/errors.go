package service

// ValidationError reports input that a service refuses before touching storage
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

var (
	ErrMissingUserID     = newValidationError("userId is required")
	ErrMissingOwnerID    = newValidationError("ownerId is required")
	ErrMissingShopName   = newValidationError("shopName is required")
	ErrMissingShopID     = newValidationError("shopId is required")
	ErrMissingProductID  = newValidationError("productId is required")
	ErrMissingCustomerID = newValidationError("customerId is required")
	ErrMissingName       = newValidationError("name is required")
	ErrMissingMobile     = newValidationError("mobile is required")
	ErrInvalidQuantity   = newValidationError("quantity must be a positive integer")
	ErrNegativeQuantity  = newValidationError("quantity must not be negative")
	ErrQuantityTooLarge  = newValidationError("quantity must not exceed 2147483647")
	ErrNegativePrice     = newValidationError("price must not be negative")
	ErrInvalidAmount     = newValidationError("amount must be greater than zero")
	ErrInvalidStatus     = newValidationError("unknown order status")
)
