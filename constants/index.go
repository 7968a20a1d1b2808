package constants

const (
	ROLE_ADMIN    = "admin"
	ROLE_CUSTOMER = "customer"
)

const (
	ORDER_NOT_FOUND    = "Order not found"
	PRODUCT_NOT_FOUND  = "Product not found"
	PAYMENT_NOT_FOUND  = "Payment not found"
	SCHEDULE_NOT_FOUND = "Schedule not found"
	DISCOUNT_NOT_FOUND = "Discount code not found"

	INVALID_DISCOUNT_CODE = "Invalid discount code"
	EXPIRED_DISCOUNT_CODE = "Expired discount code"

	SCHEDULE_IS_BOOKED     = "The schedule you selected is Booked."
	OUTSIDE_BOOKING_WINDOW = "Booking time must be between 07:00 and 17:00."

	DATA_INPUT_IS_NOT_NUMBER = "Input data must be a number"

	UNAUTHORIZED = "Unauthorized"
	FORBIDDEN    = "Forbidden"
)
