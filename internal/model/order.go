package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

type Order struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Crust     string `json:"crust"`
	Size      string `json:"size"`
	Quantity  Number `json:"quantity"`
	PricePer  Number `json:"pricePer"`
	OrderDate string `json:"orderDate"` // YYYY/MM/DD once normalized
}

// Number is a float64 that survives JSON when it holds NaN or an infinity.
// Those values are written as null and null reads back as NaN.
type Number float64

func (n Number) Float64() float64 {
	return float64(n)
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = Number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
