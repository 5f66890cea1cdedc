package models

import (
	"database/sql/driver"
	"fmt"
)

// Provider identifies an external payment account type.
type Provider uint8

const (
	ProviderUnknown Provider = iota
	ProviderBank
	ProviderGCash
)

// Providers lists every supported provider in display order.
var Providers = []Provider{ProviderBank, ProviderGCash}

var providerNames = map[Provider]string{
	ProviderBank:  "bank",
	ProviderGCash: "gcash",
}

// ParseProvider maps a wire name to a Provider. Unknown names fail with ErrNotFound.
func ParseProvider(s string) (Provider, error) {
	for p, name := range providerNames {
		if name == s {
			return p, nil
		}
	}
	return ProviderUnknown, fmt.Errorf("%w: unknown provider %q", ErrNotFound, s)
}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	_, ok := providerNames[p]
	return ok
}

func (p Provider) String() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Provider) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid provider %d", p)
	}
	return []byte(p.String()), nil
}

func (p *Provider) UnmarshalText(text []byte) error {
	parsed, err := ParseProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer.
func (p Provider) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid provider %d", p)
	}
	return p.String(), nil
}

// Scan implements sql.Scanner.
func (p *Provider) Scan(src any) error {
	return scanEnum(src, p.UnmarshalText)
}

// LinkStatus is the approval status of a linked account.
type LinkStatus uint8

const (
	// StatusNone means no account has been submitted for the provider.
	StatusNone LinkStatus = iota
	StatusPending
	StatusApproved
	StatusRejected
)

var linkStatusNames = map[LinkStatus]string{
	StatusNone:     "none",
	StatusPending:  "pending",
	StatusApproved: "approved",
	StatusRejected: "rejected",
}

// ParseLinkStatus maps a wire name to a LinkStatus.
func ParseLinkStatus(s string) (LinkStatus, error) {
	for st, name := range linkStatusNames {
		if name == s {
			return st, nil
		}
	}
	return StatusNone, fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

func (s LinkStatus) String() string {
	if name, ok := linkStatusNames[s]; ok {
		return name
	}
	return "invalid"
}

func (s LinkStatus) MarshalText() ([]byte, error) {
	if _, ok := linkStatusNames[s]; !ok {
		return nil, fmt.Errorf("invalid link status %d", s)
	}
	return []byte(s.String()), nil
}

func (s *LinkStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseLinkStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer.
func (s LinkStatus) Value() (driver.Value, error) {
	if _, ok := linkStatusNames[s]; !ok {
		return nil, fmt.Errorf("invalid link status %d", s)
	}
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *LinkStatus) Scan(src any) error {
	return scanEnum(src, s.UnmarshalText)
}

func scanEnum(src any, unmarshal func([]byte) error) error {
	switch v := src.(type) {
	case string:
		return unmarshal([]byte(v))
	case []byte:
		return unmarshal(v)
	default:
		return fmt.Errorf("unsupported enum source %T", src)
	}
}
