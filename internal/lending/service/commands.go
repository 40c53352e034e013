package service

// Commands carry raw client input into the service layer. Field validation
// and normalization happen in the domain factories, in the documented order,
// so the same rules apply no matter which transport produced the command.

// RegisterBorrowerCommand contains input for borrower registration.
type RegisterBorrowerCommand struct {
	Name  string
	Email string
}

// RegisterBookCommand contains input for registering a physical copy
// together with its catalog metadata.
type RegisterBookCommand struct {
	ISBN   string
	Title  string
	Author string
}

// BorrowBookCommand contains input for lending a copy to a borrower.
type BorrowBookCommand struct {
	BookID     string
	BorrowerID string
}

// ReturnBookCommand contains input for returning a borrowed copy.
type ReturnBookCommand struct {
	BookID     string
	BorrowerID string
}

// UpdateCatalogEntryCommand contains input for replacing catalog metadata.
type UpdateCatalogEntryCommand struct {
	ISBN   string
	Title  string
	Author string
}
