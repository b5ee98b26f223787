package restaurant

import "errors"

type OrderBy struct {
	v string
}

var (
	OrderByNotSet   OrderBy = OrderBy{}
	OrderByIDAsc    OrderBy = OrderBy{v: "id_asc"}
	OrderByNameAsc  OrderBy = OrderBy{v: "name_asc"}
	OrderByNameDesc OrderBy = OrderBy{v: "name_desc"}
)

var ErrParseOrderBy = errors.New("invalid order")

func ParseOrderBy(value string) (OrderBy, error) {
	switch value {
	case "id_asc":
		return OrderByIDAsc, nil
	case "name_asc":
		return OrderByNameAsc, nil
	case "name_desc":
		return OrderByNameDesc, nil
	default:
		return OrderByNotSet, ErrParseOrderBy
	}
}

func (o OrderBy) String() string {
	return o.v
}
