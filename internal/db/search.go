package db

import "encoding/json"

// Hit is a single document returned by the engine. The identifier travels
// outside the document body.
type Hit struct {
	ID     string
	Source json.RawMessage
}

// SearchResult is the normalized output of a search call.
type SearchResult struct {
	Total int
	Hits  []Hit
}

// searchResponse mirrors the engine's search reply wire format.
type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// getResponse mirrors the engine's get-by-id reply wire format.
type getResponse struct {
	ID     string          `json:"_id"`
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}

// indexResponse mirrors the engine's index reply wire format.
type indexResponse struct {
	ID string `json:"_id"`
}
