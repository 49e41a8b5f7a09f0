package wikidata

// sparqlResponse is the WDQS JSON results envelope.
type sparqlResponse struct {
	Results sparqlResults `json:"results"`
}

type sparqlResults struct {
	Bindings []sparqlBinding `json:"bindings"`
}

type sparqlBinding map[string]sparqlValue

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (b sparqlBinding) get(key string) string {
	return b[key].Value
}
