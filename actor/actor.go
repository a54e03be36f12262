package actor

import "encoding/json"

// Actor is a schema-less document, same shape as a movie but read-only in
// this API.
type Actor struct {
	ID     string
	Fields map[string]interface{}
}

func (a Actor) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(a.Fields)+1)
	for k, v := range a.Fields {
		doc[k] = v
	}
	doc["id"] = a.ID
	return json.Marshal(doc)
}
