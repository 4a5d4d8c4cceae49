// Package dictionary provides the message-type catalog the validator checks
// messages against: a mapping from FIX MsgType codes to human-readable names
// and required-tag sets. Catalogs are immutable after construction, so
// concurrent validations never observe a partially updated rule set.
package dictionary

import (
	"fmt"
	"sort"
)

// MessageType describes one catalog entry. Required may be empty: such types
// are known by name but carry no specific required-tag rule beyond the
// universal presence of MsgType itself.
type MessageType struct {
	Name     string `yaml:"name"`
	Required []int  `yaml:"required,omitempty"`
}

// Catalog is the provider abstraction the validator depends on. Swapping
// implementations adds message types or versions without touching the
// validation logic.
type Catalog interface {
	// TypeName resolves a MsgType code to its human-readable name.
	TypeName(code string) (string, bool)

	// RequiredTags returns the required-tag set for a MsgType code, if one
	// is registered.
	RequiredTags(code string) ([]int, bool)
}

// StaticCatalog is an immutable Catalog backed by a fixed table.
type StaticCatalog struct {
	types map[string]MessageType
}

// New builds a catalog from a table of message types. Every entry carrying a
// required-tag set must also carry a name; that invariant is what lets the
// validator report missing tags with a readable type name.
func New(types map[string]MessageType) (*StaticCatalog, error) {
	copied := make(map[string]MessageType, len(types))
	for code, mt := range types {
		if len(mt.Required) > 0 && mt.Name == "" {
			return nil, fmt.Errorf("message type %q has required tags but no name", code)
		}
		copied[code] = mt
	}
	return &StaticCatalog{types: copied}, nil
}

// TypeName implements Catalog.
func (c *StaticCatalog) TypeName(code string) (string, bool) {
	mt, ok := c.types[code]
	if !ok {
		return "", false
	}
	return mt.Name, true
}

// RequiredTags implements Catalog.
func (c *StaticCatalog) RequiredTags(code string) ([]int, bool) {
	mt, ok := c.types[code]
	if !ok || len(mt.Required) == 0 {
		return nil, false
	}
	return mt.Required, true
}

// Codes returns every registered MsgType code, sorted.
func (c *StaticCatalog) Codes() []string {
	codes := make([]string, 0, len(c.types))
	for code := range c.types {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Default returns the built-in catalog covering the common session and
// application message types, with required-tag rules for New Order - Single,
// Execution Report and Logon.
func Default() *StaticCatalog {
	catalog, err := New(map[string]MessageType{
		// Session level.
		"0": {Name: "Heartbeat"},
		"1": {Name: "Test Request"},
		"2": {Name: "Resend Request"},
		"3": {Name: "Reject"},
		"4": {Name: "Sequence Reset"},
		"5": {Name: "Logout"},
		"A": {
			Name: "Logon",
			// MsgType, SenderCompID, TargetCompID, MsgSeqNum, SendingTime,
			// EncryptMethod, HeartBtInt.
			Required: []int{35, 49, 56, 34, 52, 98, 108},
		},

		// Application level.
		"D": {
			Name: "New Order - Single",
			// Header tags plus ClOrdID, HandlInst, Symbol, Side,
			// TransactTime, OrdType.
			Required: []int{35, 49, 56, 34, 52, 11, 21, 55, 54, 60, 40},
		},
		"F": {Name: "Order Cancel Request"},
		"G": {Name: "Order Cancel/Replace Request"},
		"8": {
			Name: "Execution Report",
			// Header tags plus OrderID, ExecID, OrdStatus, ExecType, OrdType.
			Required: []int{35, 49, 56, 34, 52, 37, 17, 39, 150, 40},
		},
		"9":  {Name: "Order Cancel Reject"},
		"AE": {Name: "Trade Capture Report"},
		"j":  {Name: "Business Message Reject"},
	})
	if err != nil {
		// The built-in table is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return catalog
}
