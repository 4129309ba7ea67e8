package repositories

// RepositoryProvider aggregates the repositories the service layer depends on.
type RepositoryProvider struct {
	UserRepo UserRepository
}
