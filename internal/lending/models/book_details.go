package models

// BookDetails pairs a physical copy with its resolved catalog entry.
// Internal read shape - converted to BookDetailsResponse for HTTP serialization.
type BookDetails struct {
	Book         *Book
	CatalogEntry *CatalogEntry
}
