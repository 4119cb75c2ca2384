// Package parser turns raw PowerShell output into typed records.
//
// Structured listings are produced by ConvertTo-Json, which emits a bare
// object instead of a one-element array when there is exactly one result,
// so records are decoded as an array first and as a single object second.
// Line listings (Select-Object -ExpandProperty) carry one value per line.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang-ipv4cfg/internal/types"
)

// replacementChar marks text that could not be decoded.
const replacementChar = "�"

type adapterRecord struct {
	Name        *string `json:"Name"`
	Status      *string `json:"Status"`
	DisplayName *string `json:"DisplayName"`
}

type addressRecord struct {
	IPAddress    *string `json:"IPAddress"`
	PrefixLength *int    `json:"PrefixLength"`
}

// AddressInfo is the IPv4 address and prefix length of an adapter.
type AddressInfo struct {
	Address      string
	PrefixLength int
}

// decodeRecords decodes either a JSON array of T or a single T.
// single reports whether the output was a bare object.
func decodeRecords[T any](text string) (records []T, single bool, err error) {
	trimmed := strings.TrimSpace(text)

	var many []T
	if err := json.Unmarshal([]byte(trimmed), &many); err == nil && many != nil {
		return many, false, nil
	}

	var one T
	if err := json.Unmarshal([]byte(trimmed), &one); err == nil && strings.HasPrefix(trimmed, "{") {
		return []T{one}, true, nil
	}

	return nil, false, &types.UnparseableOutputError{Raw: text, Reason: "neither a JSON array nor a JSON object"}
}

// Adapters parses an adapter enumeration.
// Array elements without a Name or Status are skipped; a bare object
// without them is unparseable.
func Adapters(text string) ([]types.AdapterSummary, error) {
	records, single, err := decodeRecords[adapterRecord](text)
	if err != nil {
		return nil, err
	}
	if single && (records[0].Name == nil || records[0].Status == nil) {
		return nil, &types.UnparseableOutputError{Raw: text, Reason: "missing Name or Status"}
	}

	adapters := make([]types.AdapterSummary, 0, len(records))
	for _, r := range records {
		if r.Name == nil || r.Status == nil {
			continue
		}
		description := ""
		if r.DisplayName != nil {
			description = *r.DisplayName
		}
		adapters = append(adapters, types.AdapterSummary{
			ID:           *r.Name,
			DisplayLabel: FriendlyLabel(*r.Name, description, *r.Status),
		})
	}
	return adapters, nil
}

// FriendlyLabel builds "<name> (<status>)". A name containing U+FFFD was
// mis-encoded by the OS, so the description is shown in its place.
func FriendlyLabel(name, description, status string) string {
	label := name
	if strings.Contains(name, replacementChar) && description != "" {
		label = description
	}
	return fmt.Sprintf("%s (%s)", label, status)
}

// Address parses an IPv4 address query and returns the first record that has an address.
func Address(text string) (*AddressInfo, error) {
	records, _, err := decodeRecords[addressRecord](text)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.IPAddress == nil || strings.TrimSpace(*r.IPAddress) == "" {
			continue
		}
		if r.PrefixLength == nil {
			return nil, &types.UnparseableOutputError{Raw: text, Reason: "missing PrefixLength"}
		}
		return &AddressInfo{
			Address:      strings.TrimSpace(*r.IPAddress),
			PrefixLength: *r.PrefixLength,
		}, nil
	}

	return nil, &types.UnparseableOutputError{Raw: text, Reason: "missing IPAddress"}
}

// Lines returns each non-empty trimmed line. Empty output yields no values.
func Lines(text string) []string {
	var values []string
	for _, line := range strings.Split(text, "\n") {
		if value := strings.TrimSpace(line); value != "" {
			values = append(values, value)
		}
	}
	return values
}
