package models

// Chunk is one normalized line of an ingested document, the atomic
// unit of retrieval. Index is the chunk's position in the corpus and
// stays stable until the next upload replaces the whole set.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}
