// Package domain defines the core restaurant record type, its JSON handling,
// and validation for the FoodExpress engine pipelines. It acts as the
// validation gate at pipeline entry points.
package domain

import (
	"encoding/json"
	"strconv"
)

// NotAvailable is the display sentinel for absent numeric fields.
const NotAvailable = "N/A"

// ID is a restaurant identifier. Upstream data is inconsistent about whether
// ids arrive as JSON strings or numbers, so both decode to the same stable
// string key.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// String returns the stable string form of the identifier.
func (id ID) String() string { return string(id) }

// Restaurant is a single upstream restaurant record. Only ID is required;
// every other field is optional and defaulted defensively. Unknown upstream
// attributes survive a decode/encode round trip via Extra.
type Restaurant struct {
	ID           ID             `json:"id"`
	Name         string         `json:"name"`
	Cuisines     []string       `json:"cuisines"`
	DeliveryTime *float64       `json:"deliveryTime,omitempty"`
	CostForTwo   *float64       `json:"costForTwo,omitempty"`
	Rating       *float64       `json:"rating,omitempty"`
	Extra        map[string]any `json:"-"`
}

// knownFields are handled explicitly by Restaurant's JSON methods.
var knownFields = map[string]bool{
	"id": true, "name": true, "cuisines": true,
	"deliveryTime": true, "costForTwo": true, "rating": true,
}

// restaurantAlias avoids UnmarshalJSON recursion.
type restaurantAlias Restaurant

// UnmarshalJSON decodes the known fields and preserves everything else in Extra.
func (r *Restaurant) UnmarshalJSON(data []byte) error {
	var alias restaurantAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if knownFields[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if alias.Extra == nil {
			alias.Extra = make(map[string]any)
		}
		alias.Extra[k] = val
	}

	*r = Restaurant(alias)
	return nil
}

// MarshalJSON emits the known fields plus the preserved extras.
func (r Restaurant) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+6)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["id"] = r.ID.String()
	out["name"] = r.Name
	out["cuisines"] = r.CuisineList()
	if r.DeliveryTime != nil {
		out["deliveryTime"] = *r.DeliveryTime
	}
	if r.CostForTwo != nil {
		out["costForTwo"] = *r.CostForTwo
	}
	if r.Rating != nil {
		out["rating"] = *r.Rating
	}
	return json.Marshal(out)
}

// CuisineList returns the cuisines, never nil.
func (r Restaurant) CuisineList() []string {
	if r.Cuisines == nil {
		return []string{}
	}
	return r.Cuisines
}

// FormatNumber renders an optional numeric field for display. Absent values
// render as the NotAvailable sentinel rather than zero.
func FormatNumber(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Float64 is a convenience for building optional numeric fields.
func Float64(v float64) *float64 { return &v }
