package domain

// Book is a catalog entry. AvailableCopies is decremented on borrow and
// incremented on return and never leaves the range [0, TotalCopies].
type Book struct {
	ID              int32  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int32  `json:"total_copies"`
	AvailableCopies int32  `json:"available_copies"`
	CreatedOn       string `json:"created_on"`
}
