package restaurant

import "errors"

var (
	ErrRestaurantDoesNotExist = errors.New("restaurant does not exist")
	ErrInvalidRecord          = errors.New("invalid restaurant record")
)
