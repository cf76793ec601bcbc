package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the dynamic type of a setting value
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "bool"
	ValueNull   ValueKind = "null"
)

// SettingValue is a string, number or boolean coming from the key vault.
// Exactly one of Str, Num or Bool is meaningful, selected by Kind.
type SettingValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue builds a string setting value
func StringValue(s string) SettingValue { return SettingValue{Kind: ValueString, Str: s} }

// NumberValue builds a numeric setting value
func NumberValue(n float64) SettingValue { return SettingValue{Kind: ValueNumber, Num: n} }

// BoolValue builds a boolean setting value
func BoolValue(b bool) SettingValue { return SettingValue{Kind: ValueBool, Bool: b} }

// UnmarshalJSON decodes a JSON scalar into the matching variant
func (v *SettingValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = SettingValue{Kind: ValueNull}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported setting value %s: %w", string(data), err)
		}
		*v = NumberValue(n)
	}
	return nil
}

// MarshalJSON encodes the active variant
func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueString:
		return json.Marshal(v.Str)
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// String renders the value for display
func (v SettingValue) String() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// KeyVaultSecret is an entry of GET /api/settings/azure-keyvault-info
type KeyVaultSecret struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	CurrentValue SettingValue `json:"currentValue"`
}

// KeyVaultInfo wraps the secret list
type KeyVaultInfo struct {
	Secrets []KeyVaultSecret `json:"secrets"`
}

// UpdateSecretRequest is the body of POST /api/settings/update-azure-secret
type UpdateSecretRequest struct {
	Name  string       `json:"name"`
	Value SettingValue `json:"value"`
}

// Settings is the operational configuration returned by GET /api/settings
type Settings map[string]SettingValue
