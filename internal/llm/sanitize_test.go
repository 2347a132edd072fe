package llm

import (
	"encoding/json"
	"testing"
)

func TestSanitizeFields_RenamesSynonyms(t *testing.T) {
	raw := []byte(`{"shipping_details":"Vessel MAERSK OHIO","description_of_goods":"electronics","customs_procedure":"home use"}`)
	out, dropped, err := SanitizeFields(raw)
	if err != nil {
		t.Fatalf("SanitizeFields: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if m["transport_details"] != "Vessel MAERSK OHIO" {
		t.Errorf("transport_details: got %v", m["transport_details"])
	}
	if m["goods_description"] != "electronics" {
		t.Errorf("goods_description: got %v", m["goods_description"])
	}
	if m["regime_details"] != "home use" {
		t.Errorf("regime_details: got %v", m["regime_details"])
	}
	if len(dropped) != 3 {
		t.Errorf("dropped: got %v", dropped)
	}
}

func TestSanitizeFields_DropsUnknownNullAndEmpty(t *testing.T) {
	raw := []byte(`{"transport_details":"x","hallucinated":"y","package_details":null,"regime_details":"  ","confidence":0.8}`)
	out, _, err := SanitizeFields(raw)
	if err != nil {
		t.Fatalf("SanitizeFields: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if _, ok := m["hallucinated"]; ok {
		t.Error("unknown key survived")
	}
	if _, ok := m["package_details"]; ok {
		t.Error("null value survived")
	}
	if _, ok := m["regime_details"]; ok {
		t.Error("blank value survived")
	}
	if m["transport_details"] != "x" || m["confidence"] != 0.8 {
		t.Errorf("kept fields mangled: %v", m)
	}
}

func TestSanitizeFields_CoercesNumbersToStrings(t *testing.T) {
	out, _, err := SanitizeFields([]byte(`{"package_details":40}`))
	if err != nil {
		t.Fatalf("SanitizeFields: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if m["package_details"] != "40" {
		t.Errorf("package_details: got %v (%T)", m["package_details"], m["package_details"])
	}
}

func TestSanitizeFields_InvalidJSON(t *testing.T) {
	if _, _, err := SanitizeFields([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate_SchemaRoundTrip(t *testing.T) {
	schema := BuildESADJSONSchema()

	valid := []byte(`{"transport_details":"Vessel MAERSK OHIO","confidence":0.9}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	// Everything is optional, so an empty object still validates.
	if err := ValidateJSONAgainstSchema(schema, []byte(`{}`)); err != nil {
		t.Errorf("empty payload rejected: %v", err)
	}

	invalid := [][]byte{
		[]byte(`{"transport_details":42}`),
		[]byte(`{"unexpected_key":"x"}`),
		[]byte(`{"confidence":1.5}`),
	}
	for _, payload := range invalid {
		if err := ValidateJSONAgainstSchema(schema, payload); err == nil {
			t.Errorf("payload %s passed validation", payload)
		}
	}
}

func TestSanitizeThenValidate(t *testing.T) {
	schema := BuildESADJSONSchema()
	messy := []byte(`{"shipping_details":"Truck via Highway 95","hallucinated":"y","package_details":null}`)

	if err := ValidateJSONAgainstSchema(schema, messy); err == nil {
		t.Fatal("messy payload should fail strict validation")
	}
	cleaned, _, err := SanitizeFields(messy)
	if err != nil {
		t.Fatalf("SanitizeFields: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		t.Errorf("sanitized payload still invalid: %v", err)
	}

	var f ESADFields
	if err := json.Unmarshal(cleaned, &f); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	if f.TransportDetails != "Truck via Highway 95" {
		t.Errorf("transport details: got %q", f.TransportDetails)
	}
}
