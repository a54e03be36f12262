package movie

import "encoding/json"

// Movie is a schema-less document. The store assigns the identifier; every
// other attribute is whatever the client submitted. The fields consulted by
// queries are "title" (string) and "rating" (number).
type Movie struct {
	ID     string
	Fields map[string]interface{}
}

// MarshalJSON flattens the document so the identifier appears as an "id"
// attribute alongside the stored fields, matching the wire format of the API.
func (m Movie) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(m.Fields)+1)
	for k, v := range m.Fields {
		doc[k] = v
	}
	doc["id"] = m.ID
	return json.Marshal(doc)
}

// Title returns the title field if it is a string, or "" otherwise.
func (m Movie) Title() string {
	title, _ := m.Fields["title"].(string)
	return title
}
