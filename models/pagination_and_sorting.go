package models

type PaginationAndSorting struct {
	Sorting SortingField
	Order   SortingOrder
	Limit   int
}

type SortingField string
type SortingOrder string

const (
	SortingFieldCreatedAt SortingField = "created_at"

	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)
