package domain

import (
	"encoding/json"
	"testing"
)

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string id", `"abc-123"`, "abc-123"},
		{"integer id", `334475`, "334475"},
		{"large integer id", `9007199254740993`, "9007199254740993"},
		{"decimal id", `12.5`, "12.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if id != tt.want {
				t.Errorf("got %q, want %q", id, tt.want)
			}
		})
	}
}

func TestRestaurant_UnmarshalKnownFields(t *testing.T) {
	data := []byte(`{
		"id": 42,
		"name": "Biryani House",
		"cuisines": ["Biryani", "North Indian"],
		"deliveryTime": 30,
		"costForTwo": 400,
		"rating": 4.3
	}`)

	var r Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r.ID != "42" {
		t.Errorf("id: got %q", r.ID)
	}
	if r.Name != "Biryani House" {
		t.Errorf("name: got %q", r.Name)
	}
	if len(r.Cuisines) != 2 || r.Cuisines[0] != "Biryani" {
		t.Errorf("cuisines: got %v", r.Cuisines)
	}
	if r.DeliveryTime == nil || *r.DeliveryTime != 30 {
		t.Errorf("deliveryTime: got %v", r.DeliveryTime)
	}
	if r.Rating == nil || *r.Rating != 4.3 {
		t.Errorf("rating: got %v", r.Rating)
	}
}

func TestRestaurant_ExtrasSurviveRoundTrip(t *testing.T) {
	data := []byte(`{"id":"7","name":"Cafe","cuisines":[],"locality":"Downtown","veg":true,"offers":[{"code":"SAVE50"}]}`)

	var r Restaurant
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Extra["locality"] != "Downtown" {
		t.Errorf("locality: got %v", r.Extra["locality"])
	}
	if r.Extra["veg"] != true {
		t.Errorf("veg: got %v", r.Extra["veg"])
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if back["locality"] != "Downtown" {
		t.Errorf("locality lost in round trip: %v", back)
	}
	if back["id"] != "7" {
		t.Errorf("id: got %v", back["id"])
	}
	if _, ok := back["rating"]; ok {
		t.Error("absent rating should not be emitted")
	}
}

func TestRestaurant_MissingOptionalFields(t *testing.T) {
	var r Restaurant
	if err := json.Unmarshal([]byte(`{"id":1,"name":"Sparse"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Cuisines != nil {
		t.Errorf("cuisines should be nil, got %v", r.Cuisines)
	}
	if got := r.CuisineList(); got == nil || len(got) != 0 {
		t.Errorf("CuisineList: got %v", got)
	}
	if r.DeliveryTime != nil || r.CostForTwo != nil || r.Rating != nil {
		t.Error("optional numerics should be nil when absent")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"absent", nil, "N/A"},
		{"integer-valued", Float64(30), "30"},
		{"fractional", Float64(4.25), "4.25"},
		{"zero is a real value", Float64(0), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
