package repositories

// MaystorDbRepository groups every query against the marketplace database.
// Usecases depend on narrow interfaces that this struct satisfies.
type MaystorDbRepository struct{}

func NewMaystorDbRepository() *MaystorDbRepository {
	return &MaystorDbRepository{}
}
