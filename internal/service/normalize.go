package service

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"pizzeria/internal/model"
)

var isoDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// OrderForm holds the raw, string-typed fields of a create or update request.
type OrderForm struct {
	Type      string
	Crust     string
	Size      string
	Quantity  string
	PricePer  string
	OrderDate string
}

func FormFromValues(v url.Values) OrderForm {
	return OrderForm{
		Type:      v.Get("type"),
		Crust:     v.Get("crust"),
		Size:      v.Get("size"),
		Quantity:  v.Get("quantity"),
		PricePer:  v.Get("pricePer"),
		OrderDate: v.Get("orderDate"),
	}
}

// NormalizeOrder builds the stored record for id. Nothing is rejected:
// non-numeric amounts become NaN and odd dates are kept as typed.
func NormalizeOrder(id int, f OrderForm) model.Order {
	return model.Order{
		ID:        id,
		Type:      f.Type,
		Crust:     f.Crust,
		Size:      f.Size,
		Quantity:  ParseNumber(f.Quantity),
		PricePer:  ParseNumber(f.PricePer),
		OrderDate: NormalizeDate(f.OrderDate),
	}
}

// ParseNumber coerces s to a number: blank is 0, anything unparseable is NaN.
func ParseNumber(s string) model.Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Number(math.NaN())
	}
	return model.Number(f)
}

// NormalizeDate rewrites YYYY-MM-DD as YYYY/MM/DD.
func NormalizeDate(s string) string {
	return isoDate.ReplaceAllString(s, "$1/$2/$3")
}

// ParseID converts a path parameter to an order id.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}
