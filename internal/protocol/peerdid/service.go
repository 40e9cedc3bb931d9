package peerdid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"peerdid/internal/domain"
)

// DIDCommMessaging is the service type used by DIDComm v2 endpoints.
const DIDCommMessaging = "DIDCommMessaging"

var (
	abbreviations = map[string]string{
		"type":            "t",
		"serviceEndpoint": "s",
		"routingKeys":     "r",
		"accept":          "a",
	}
	expansions = map[string]string{
		"t": "type",
		"s": "serviceEndpoint",
		"r": "routingKeys",
		"a": "accept",
	}
)

// NewDIDCommService returns the service descriptor for a DIDComm v2 endpoint.
func NewDIDCommService(endpoint string, routingKeys []string) *domain.Service {
	return &domain.Service{
		Type:            DIDCommMessaging,
		ServiceEndpoint: endpoint,
		RoutingKeys:     routingKeys,
		Accept:          []string{"didcomm/v2"},
	}
}

// encodeService abbreviates svc and returns its base64url form.
func encodeService(svc domain.Service) (string, error) {
	if strings.TrimSpace(svc.ServiceEndpoint) == "" {
		return "", fmt.Errorf("%w: empty service endpoint", ErrInvalidService)
	}
	if svc.Type == "" {
		svc.Type = DIDCommMessaging
	}
	svc.ID = ""
	full, err := json.Marshal(svc)
	if err != nil {
		return "", err
	}
	var m map[string]any
	if err := json.Unmarshal(full, &m); err != nil {
		return "", err
	}
	short := make(map[string]any, len(m))
	for k, v := range m {
		if a, ok := abbreviations[k]; ok {
			k = a
		}
		short[k] = v
	}
	if short["t"] == DIDCommMessaging {
		short["t"] = "dm"
	}
	raw, err := json.Marshal(short)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// decodeServices expands one S element. The element may hold a single
// service or an array of them; ids continue from next.
func decodeServices(did domain.DID, encoded string, next int) ([]domain.Service, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidService, err)
	}

	var items []map[string]any
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal(raw, &items)
	} else {
		var one map[string]any
		err = json.Unmarshal(raw, &one)
		items = append(items, one)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidService, err)
	}

	out := make([]domain.Service, 0, len(items))
	for _, item := range items {
		full := make(map[string]any, len(item))
		for k, v := range item {
			if e, ok := expansions[k]; ok {
				k = e
			}
			full[k] = v
		}
		if full["type"] == "dm" {
			full["type"] = DIDCommMessaging
		}
		b, err := json.Marshal(full)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidService, err)
		}
		var svc domain.Service
		if err := json.Unmarshal(b, &svc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidService, err)
		}
		if svc.Type == "" || svc.ServiceEndpoint == "" {
			return nil, fmt.Errorf("%w: missing type or endpoint", ErrInvalidService)
		}
		svc.ID = fmt.Sprintf("%s#%s-%d", did, strings.ToLower(svc.Type), next)
		next++
		out = append(out, svc)
	}
	return out, nil
}
