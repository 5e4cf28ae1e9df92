package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     IUserRepository
	StudentRepository  IStudentRepository
	OptionRepository   IOptionRepository
	AuditLogRepository IAuditLogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		StudentRepository:  NewStudentRepository(db),
		OptionRepository:   NewOptionRepository(db),
		AuditLogRepository: NewAuditLogRepository(db),
	}
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
