package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"gopkg.in/yaml.v3"
)

// exportSectionOrder is the top-level key order of exported configs; other
// keys follow alphabetically.
var exportSectionOrder = []string{
	"logging", "output", "company", "customer", "system",
	"appliances", "quote", "recommendations", "advice",
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range exportSectionOrder {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	return yaml.Marshal(orderedConfig{items: items})
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}
